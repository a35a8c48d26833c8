package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phyten/urlx/internal/engine"
	"github.com/phyten/urlx/internal/model"
)

var sampleItems = []engine.Item{
	{
		URL:    "https://example.com/docs?q=a|b",
		Kind:   model.KindString,
		File:   "internal/app/main.go",
		Line:   42,
		Col:    10,
		Offset: 1234,
		Lang:   "go",
	},
	{
		URL:      "//cdn.example.com/lib.js",
		Kind:     model.KindLineComment,
		File:     "web/ui.js",
		Line:     7,
		Col:      3,
		Offset:   88,
		Lang:     "javascript",
		Excluded: true,
	},
}

func TestResolveFieldsDefaults(t *testing.T) {
	sel, err := ResolveFields("", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	got := Headers(sel.Fields)
	want := []string{"URL", "KIND", "LOCATION", "LANG"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("default headers = %v, want %v", got, want)
	}
}

func TestResolveFieldsAliases(t *testing.T) {
	sel, err := ResolveFields("url,type,language,column", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	got := strings.Join(Headers(sel.Fields), ",")
	if got != "URL,KIND,LANG,COL" {
		t.Fatalf("aliased headers = %s", got)
	}
}

func TestResolveFieldsUnknown(t *testing.T) {
	if _, err := ResolveFields("url,bogus", false); err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestWriteCSV(t *testing.T) {
	sel, err := ResolveFields("url,kind,location,lang,excluded", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleItems, sel); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	assertGolden(t, "want-csv.csv", buf.String())
	if !strings.Contains(buf.String(), "\r\n") {
		t.Fatal("CSV output should use CRLF line endings")
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, sampleItems); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	output := buf.String()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != len(sampleItems) {
		t.Fatalf("expected %d lines, got %d", len(sampleItems), len(lines))
	}
	for i, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Fatalf("line %d is not valid JSON: %s", i, line)
		}
		var item engine.Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			t.Fatalf("failed to decode line %d: %v", i, err)
		}
	}
	if strings.Contains(output, "\\u0026") {
		t.Fatal("HTML characters should not be escaped in NDJSON output")
	}
	assertGolden(t, "want-ndjson.ndjson", output)
}

func TestWriteMarkdownTable(t *testing.T) {
	sel, err := ResolveFields("url,kind,location", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, sampleItems, sel); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "https://example.com/docs?q=a\\|b") {
		t.Fatal("expected pipe characters to be escaped in markdown output")
	}
	assertGolden(t, "want-md.md", output)
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", name, err)
	}
	if diff := diffStrings(string(want), got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func diffStrings(want, got string) string {
	if want == got {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("want:\n")
	buf.WriteString(want)
	if !strings.HasSuffix(want, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("got:\n")
	buf.WriteString(got)
	if !strings.HasSuffix(got, "\n") {
		buf.WriteString("\n")
	}
	return buf.String()
}
