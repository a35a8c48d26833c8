package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/urlx/internal/engine"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields       []Field
	ShowExcluded bool
}

type fieldMeta struct {
	header     string
	isExcluded bool
}

var fieldRegistry = map[string]fieldMeta{
	"url":      {header: "URL"},
	"kind":     {header: "KIND"},
	"file":     {header: "FILE"},
	"line":     {header: "LINE"},
	"col":      {header: "COL"},
	"offset":   {header: "OFFSET"},
	"lang":     {header: "LANG"},
	"location": {header: "LOCATION"},
	"excluded": {header: "EXCLUDED", isExcluded: true},
}

var fieldAliases = map[string]string{
	"language": "lang",
	"column":   "col",
	"path":     "file",
	"type":     "kind",
}

// ResolveFields はフィールド指定文字列（例: "url,kind,location"）を検証して
// 選択結果に変換します。空なら既定の並びを使います。
func ResolveFields(raw string, withExcluded bool) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	sel := FieldSelection{}
	if raw == "" {
		keys := []string{"url", "kind", "location", "lang"}
		if withExcluded {
			keys = append(keys, "excluded")
		}
		raw = strings.Join(keys, ",")
	}
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		key := strings.ToLower(strings.TrimSpace(part))
		if key == "" {
			continue
		}
		if canonical, ok := fieldAliases[key]; ok {
			key = canonical
		}
		meta, ok := fieldRegistry[key]
		if !ok {
			return sel, fmt.Errorf("unknown field: %s", part)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		sel.Fields = append(sel.Fields, Field{Key: key, Header: meta.header})
		if meta.isExcluded {
			sel.ShowExcluded = true
		}
	}
	if len(sel.Fields) == 0 {
		return sel, fmt.Errorf("no fields selected")
	}
	return sel, nil
}

// Headers は選択されたフィールドの見出し行を返します。
func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

// RowValues は 1 件分の値をフィールド順に並べます。
func RowValues(it engine.Item, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = fieldValue(it, f.Key)
	}
	return out
}

func fieldValue(it engine.Item, key string) string {
	switch key {
	case "url":
		return it.URL
	case "kind":
		return string(it.Kind)
	case "file":
		return it.File
	case "line":
		return strconv.Itoa(it.Line)
	case "col":
		return strconv.Itoa(it.Col)
	case "offset":
		return strconv.Itoa(it.Offset)
	case "lang":
		return it.Lang
	case "location":
		return fmt.Sprintf("%s:%d:%d", it.File, it.Line, it.Col)
	case "excluded":
		if it.Excluded {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}
