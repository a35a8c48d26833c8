package opts

import (
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/urlx/internal/engine"
	"github.com/phyten/urlx/internal/lang"
)

const (
	maxJobs = 64
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults(rootDir string) engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		RootDir:           rootDir,
		Paths:             nil,
		Excludes:          nil,
		Langs:             nil,
		IncludeComments:   false,
		IncludeDocstrings: false,
		Schemes:           nil,
		Dedupe:            false,
		Jobs:              jobs,
		MaxFileBytes:      0,
		ExcludeTypical:    false,
		Progress:          false,
	}
}

// ApplyWebQueryToOptions copies recognised values from the query string into the
// provided options. Validation happens separately via NormalizeAndValidate.
func ApplyWebQueryToOptions(def engine.Options, q url.Values) (engine.Options, error) {
	out := def

	if raw, ok := lastLiteralValue(q["include_comments"]); ok {
		v, err := ParseBool(raw, "include_comments")
		if err != nil {
			return out, err
		}
		out.IncludeComments = v
	}
	if raw, ok := lastLiteralValue(q["include_docstrings"]); ok {
		v, err := ParseBool(raw, "include_docstrings")
		if err != nil {
			return out, err
		}
		out.IncludeDocstrings = v
	}
	if raw, ok := lastLiteralValue(q["dedupe"]); ok {
		v, err := ParseBool(raw, "dedupe")
		if err != nil {
			return out, err
		}
		out.Dedupe = v
	}
	if raw, ok := lastLiteralValue(q["exclude_typical"]); ok {
		v, err := ParseBool(raw, "exclude_typical")
		if err != nil {
			return out, err
		}
		out.ExcludeTypical = v
	}
	if raw, ok := lastLiteralValue(q["jobs"]); ok {
		n, err := ParseIntInRange(raw, "jobs", 1, maxJobs)
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}
	if raw, ok := lastLiteralValue(q["max_file_bytes"]); ok {
		n, err := parseInt(raw, "max_file_bytes")
		if err != nil {
			return out, err
		}
		out.MaxFileBytes = n
	}
	if raw := q["path"]; len(raw) > 0 {
		out.Paths = SplitMulti(raw)
	}
	if raw := q["exclude"]; len(raw) > 0 {
		out.Excludes = SplitMulti(raw)
	}
	if raw := q["lang"]; len(raw) > 0 {
		out.Langs = SplitMulti(raw)
	}
	if raw := q["scheme"]; len(raw) > 0 {
		out.Schemes = SplitMulti(raw)
	}
	if raw, ok := lastRawValue(q["root"]); ok {
		out.RootDir = raw
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}
	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}
	if strings.TrimSpace(o.RootDir) == "" {
		o.RootDir = "."
	}

	o.Paths = trimSlice(o.Paths)
	o.Excludes = trimSlice(o.Excludes)
	o.Schemes = normalizeSchemes(o.Schemes)
	o.Langs = trimSlice(o.Langs)
	if len(o.Langs) > 0 {
		o.Langs = lang.CanonicalLangs(o.Langs)
		for _, l := range o.Langs {
			if !lang.Known(l) {
				return fmt.Errorf("unknown language: %s", l)
			}
		}
	}
	return nil
}

func normalizeSchemes(schemes []string) []string {
	out := make([]string, 0, len(schemes))
	for _, s := range schemes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if s == "any" {
			return nil
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "table", "tsv", "json", "csv", "ndjson", "md", "markdown":
		if v == "markdown" {
			v = "md"
		}
		return v, nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated query parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

func lastRawValue(vals []string) (string, bool) {
	for i := len(vals) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(vals[i])
		if trimmed == "" {
			continue
		}
		return trimmed, true
	}
	return "", false
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
