package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	engineopts "github.com/phyten/urlx/internal/engine/opts"
)

// FromEnv は URLX_ プレフィックスの環境変数から設定を組み立てます。
// 未設定の変数はフィールドを nil のままにします。
func FromEnv() (Config, error) {
	return fromEnviron(os.Getenv)
}

func fromEnviron(getenv func(string) string) (Config, error) {
	var cfg Config

	if err := envStringList(getenv, "URLX_PATH", &cfg.Engine.Paths); err != nil {
		return cfg, err
	}
	if err := envStringList(getenv, "URLX_EXCLUDE", &cfg.Engine.Excludes); err != nil {
		return cfg, err
	}
	if err := envStringList(getenv, "URLX_LANG", &cfg.Engine.Langs); err != nil {
		return cfg, err
	}
	if err := envStringList(getenv, "URLX_SCHEME", &cfg.Engine.Schemes); err != nil {
		return cfg, err
	}
	if err := envBool(getenv, "URLX_INCLUDE_COMMENTS", &cfg.Engine.IncludeComments); err != nil {
		return cfg, err
	}
	if err := envBool(getenv, "URLX_INCLUDE_DOCSTRINGS", &cfg.Engine.IncludeDocstrings); err != nil {
		return cfg, err
	}
	if err := envBool(getenv, "URLX_DEDUPE", &cfg.Engine.Dedupe); err != nil {
		return cfg, err
	}
	if err := envBool(getenv, "URLX_EXCLUDE_TYPICAL", &cfg.Engine.ExcludeTypical); err != nil {
		return cfg, err
	}
	if err := envInt(getenv, "URLX_JOBS", &cfg.Engine.Jobs); err != nil {
		return cfg, err
	}
	if err := envInt(getenv, "URLX_MAX_FILE_BYTES", &cfg.Engine.MaxFileBytes); err != nil {
		return cfg, err
	}
	envString(getenv, "URLX_ROOT", &cfg.Engine.Root)
	envString(getenv, "URLX_OUTPUT", &cfg.Engine.Output)
	envString(getenv, "URLX_COLOR", &cfg.Engine.Color)
	envString(getenv, "URLX_FIELDS", &cfg.UI.Fields)
	envString(getenv, "URLX_SORT", &cfg.UI.Sort)
	if err := envInt(getenv, "URLX_TRUNCATE", &cfg.UI.Truncate); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envString(getenv func(string) string, name string, dst **string) {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return
	}
	*dst = &v
}

func envStringList(getenv func(string) string, name string, dst **[]string) error {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return nil
	}
	list := engineopts.SplitMulti([]string{v})
	*dst = &list
	return nil
}

func envBool(getenv func(string) string, name string, dst **bool) error {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return nil
	}
	parsed, err := engineopts.ParseBool(v, name)
	if err != nil {
		return err
	}
	*dst = &parsed
	return nil
}

func envInt(getenv func(string) string, name string, dst **int) error {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %q", name, v)
	}
	*dst = &n
	return nil
}
