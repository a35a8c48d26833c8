package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/urlx/internal/engine/opts"
)

var engineKeyMap = map[string]string{
	"path":               "path",
	"paths":              "path",
	"exclude":            "exclude",
	"excludes":           "exclude",
	"lang":               "lang",
	"langs":              "lang",
	"languages":          "lang",
	"scheme":             "scheme",
	"schemes":            "scheme",
	"include_comments":   "include_comments",
	"include_docstrings": "include_docstrings",
	"dedupe":             "dedupe",
	"exclude_typical":    "exclude_typical",
	"jobs":               "jobs",
	"max_file_bytes":     "max_file_bytes",
	"max_bytes":          "max_file_bytes",
	"root":               "root",
	"output":             "output",
	"color":              "color",
}

var uiKeyMap = map[string]string{
	"fields":   "fields",
	"sort":     "sort",
	"truncate": "truncate",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	engineSection := make(map[string]any)
	uiSection := make(map[string]any)

	if block, ok := raw["engine"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("engine: %w", err)
		}
		if err := fillSection(engineSection, sub, engineKeyMap, "engine"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["ui"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("ui: %w", err)
		}
		if err := fillSection(uiSection, sub, uiKeyMap, "ui"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "engine", "ui":
			continue
		default:
			if canonical, ok := engineKeyMap[norm]; ok {
				engineSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignEngine(engineSection, &cfg.Engine); err != nil {
		return cfg, fmt.Errorf("engine: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", "_"))
}

func toStringKeyMap(block any) (map[string]any, error) {
	switch v := block.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			ks, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", key)
			}
			out[ks] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a table, got %T", block)
	}
}

func assignEngine(section map[string]any, dst *EngineConfig) error {
	for key, value := range section {
		var err error
		switch key {
		case "path":
			err = setStringList(&dst.Paths, key, value)
		case "exclude":
			err = setStringList(&dst.Excludes, key, value)
		case "lang":
			err = setStringList(&dst.Langs, key, value)
		case "scheme":
			err = setStringList(&dst.Schemes, key, value)
		case "include_comments":
			err = setBool(&dst.IncludeComments, key, value)
		case "include_docstrings":
			err = setBool(&dst.IncludeDocstrings, key, value)
		case "dedupe":
			err = setBool(&dst.Dedupe, key, value)
		case "exclude_typical":
			err = setBool(&dst.ExcludeTypical, key, value)
		case "jobs":
			err = setInt(&dst.Jobs, key, value)
		case "max_file_bytes":
			err = setInt(&dst.MaxFileBytes, key, value)
		case "root":
			err = setString(&dst.Root, key, value)
		case "output":
			err = setString(&dst.Output, key, value)
		case "color":
			err = setString(&dst.Color, key, value)
		default:
			err = fmt.Errorf("unknown engine key: %s", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		var err error
		switch key {
		case "fields":
			err = setString(&dst.Fields, key, value)
		case "sort":
			err = setString(&dst.Sort, key, value)
		case "truncate":
			err = setInt(&dst.Truncate, key, value)
		default:
			err = fmt.Errorf("unknown ui key: %s", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func setString(dst **string, key string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%s must be a string, got %T", key, value)
	}
	out := s
	*dst = &out
	return nil
}

func setBool(dst **bool, key string, value any) error {
	switch v := value.(type) {
	case bool:
		out := v
		*dst = &out
		return nil
	case string:
		parsed, err := engineopts.ParseBool(v, key)
		if err != nil {
			return err
		}
		*dst = &parsed
		return nil
	default:
		return fmt.Errorf("%s must be a boolean, got %T", key, value)
	}
}

func setInt(dst **int, key string, value any) error {
	switch v := value.(type) {
	case int:
		out := v
		*dst = &out
		return nil
	case int64:
		out := int(v)
		*dst = &out
		return nil
	case float64:
		out := int(v)
		if float64(out) != v {
			return fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		*dst = &out
		return nil
	default:
		return fmt.Errorf("%s must be an integer, got %T", key, value)
	}
}

func setStringList(dst **[]string, key string, value any) error {
	switch v := value.(type) {
	case string:
		list := engineopts.SplitMulti([]string{v})
		*dst = &list
		return nil
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%s must be a list of strings, got %T element", key, item)
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			list = append(list, s)
		}
		*dst = &list
		return nil
	case []string:
		list := make([]string, 0, len(v))
		for _, s := range v {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			list = append(list, s)
		}
		*dst = &list
		return nil
	default:
		return fmt.Errorf("%s must be a list of strings, got %T", key, value)
	}
}
