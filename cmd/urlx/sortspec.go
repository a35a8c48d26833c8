package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phyten/urlx/internal/engine"
)

type sortKey struct {
	field string
	desc  bool
}

type lessFunc func(a, b engine.Item) bool

var sortableFields = map[string]bool{
	"url":    true,
	"kind":   true,
	"file":   true,
	"line":   true,
	"col":    true,
	"offset": true,
	"lang":   true,
}

// parseSortSpec は "file,line" や "-url" のような並べ替え指定を解釈します。
// 空なら nil を返し、エンジンの既定順（file, line, col）のままにします。
func parseSortSpec(raw string) (lessFunc, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var keys []sortKey
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		desc := false
		if strings.HasPrefix(name, "-") {
			desc = true
			name = name[1:]
		}
		name = strings.ToLower(name)
		if !sortableFields[name] {
			return nil, fmt.Errorf("invalid --sort field: %s", part)
		}
		keys = append(keys, sortKey{field: name, desc: desc})
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty --sort value")
	}
	return func(a, b engine.Item) bool {
		for _, k := range keys {
			c := compareField(a, b, k.field)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	}, nil
}

func sortItems(items []engine.Item, less lessFunc) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func compareField(a, b engine.Item, field string) int {
	switch field {
	case "url":
		return strings.Compare(a.URL, b.URL)
	case "kind":
		return strings.Compare(string(a.Kind), string(b.Kind))
	case "file":
		return strings.Compare(a.File, b.File)
	case "line":
		return compareInt(a.Line, b.Line)
	case "col":
		return compareInt(a.Col, b.Col)
	case "offset":
		return compareInt(a.Offset, b.Offset)
	case "lang":
		return strings.Compare(a.Lang, b.Lang)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
