package config

import (
	"strings"

	"github.com/phyten/urlx/internal/engine"
)

type EngineConfig struct {
	Paths             *[]string `yaml:"path" toml:"path" json:"path"`
	Excludes          *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	Langs             *[]string `yaml:"lang" toml:"lang" json:"lang"`
	Schemes           *[]string `yaml:"scheme" toml:"scheme" json:"scheme"`
	IncludeComments   *bool     `yaml:"include_comments" toml:"include_comments" json:"include_comments"`
	IncludeDocstrings *bool     `yaml:"include_docstrings" toml:"include_docstrings" json:"include_docstrings"`
	Dedupe            *bool     `yaml:"dedupe" toml:"dedupe" json:"dedupe"`
	ExcludeTypical    *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	Jobs              *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes      *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Root              *string   `yaml:"root" toml:"root" json:"root"`
	Output            *string   `yaml:"output" toml:"output" json:"output"`
	Color             *string   `yaml:"color" toml:"color" json:"color"`
}

type UIConfig struct {
	Fields   *string `yaml:"fields" toml:"fields" json:"fields"`
	Sort     *string `yaml:"sort" toml:"sort" json:"sort"`
	Truncate *int    `yaml:"truncate" toml:"truncate" json:"truncate"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

// Apply は設定ファイル・環境変数で与えられた値をオプションに反映します。
// nil のフィールド（未指定）は既定値のままにします。
func (c EngineConfig) Apply(opts *engine.Options) {
	if opts == nil {
		return
	}
	if c.Paths != nil {
		opts.Paths = cloneStrings(*c.Paths)
	}
	if c.Excludes != nil {
		opts.Excludes = cloneStrings(*c.Excludes)
	}
	if c.Langs != nil {
		opts.Langs = cloneStrings(*c.Langs)
	}
	if c.Schemes != nil {
		opts.Schemes = cloneStrings(*c.Schemes)
	}
	if c.IncludeComments != nil {
		opts.IncludeComments = *c.IncludeComments
	}
	if c.IncludeDocstrings != nil {
		opts.IncludeDocstrings = *c.IncludeDocstrings
	}
	if c.Dedupe != nil {
		opts.Dedupe = *c.Dedupe
	}
	if c.ExcludeTypical != nil {
		opts.ExcludeTypical = *c.ExcludeTypical
	}
	if c.Jobs != nil {
		opts.Jobs = *c.Jobs
	}
	if c.MaxFileBytes != nil {
		opts.MaxFileBytes = *c.MaxFileBytes
	}
	if c.Root != nil {
		if trimmed := strings.TrimSpace(*c.Root); trimmed != "" {
			opts.RootDir = trimmed
		}
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
