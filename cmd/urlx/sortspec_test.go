package main

import (
	"testing"

	"github.com/phyten/urlx/internal/engine"
	"github.com/phyten/urlx/internal/model"
)

func sampleSortItems() []engine.Item {
	return []engine.Item{
		{URL: "https://b.example.com", Kind: model.KindString, File: "b.go", Line: 10, Col: 1, Offset: 200, Lang: "go"},
		{URL: "https://a.example.com", Kind: model.KindCode, File: "a.py", Line: 3, Col: 5, Offset: 40, Lang: "python"},
		{URL: "https://c.example.com", Kind: model.KindLineComment, File: "a.py", Line: 1, Col: 2, Offset: 4, Lang: "python"},
	}
}

func TestParseSortSpecEmpty(t *testing.T) {
	less, err := parseSortSpec("")
	if err != nil {
		t.Fatalf("parseSortSpec failed: %v", err)
	}
	if less != nil {
		t.Fatal("empty spec should keep the engine's default ordering")
	}
}

func TestParseSortSpecUnknownKey(t *testing.T) {
	if _, err := parseSortSpec("unknown"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestSortByURL(t *testing.T) {
	less, err := parseSortSpec("url")
	if err != nil {
		t.Fatalf("parseSortSpec failed: %v", err)
	}
	items := sampleSortItems()
	sortItems(items, less)
	if items[0].URL != "https://a.example.com" || items[2].URL != "https://c.example.com" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestSortDescending(t *testing.T) {
	less, err := parseSortSpec("-line")
	if err != nil {
		t.Fatalf("parseSortSpec failed: %v", err)
	}
	items := sampleSortItems()
	sortItems(items, less)
	if items[0].Line != 10 || items[2].Line != 1 {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestSortMultipleKeys(t *testing.T) {
	less, err := parseSortSpec("file,-offset")
	if err != nil {
		t.Fatalf("parseSortSpec failed: %v", err)
	}
	items := sampleSortItems()
	sortItems(items, less)
	if items[0].File != "a.py" || items[0].Offset != 40 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].File != "a.py" || items[1].Offset != 4 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
	if items[2].File != "b.go" {
		t.Fatalf("unexpected third item: %+v", items[2])
	}
}
