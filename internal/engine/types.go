package engine

import (
	"github.com/phyten/urlx/internal/model"
)

// Item は 1 件の URL 検出を表す
type Item struct {
	URL      string            `json:"url"`
	Kind     model.FindingKind `json:"kind"`
	File     string            `json:"file"`
	Line     int               `json:"line"`
	Col      int               `json:"col"`
	Offset   int               `json:"offset"`
	Lang     string            `json:"lang,omitempty"`
	Excluded bool              `json:"excluded,omitempty"`
}

// ItemError は 1 ファイルの処理に失敗した際の情報を表す
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Options は実行オプション
type Options struct {
	RootDir           string
	Paths             []string
	Excludes          []string
	Langs             []string
	IncludeComments   bool
	IncludeDocstrings bool
	Schemes           []string // 空なら全スキーム
	Dedupe            bool
	Jobs              int
	MaxFileBytes      int
	ExcludeTypical    bool
	Progress          bool
}

// Result は出力
type Result struct {
	Items      []Item      `json:"items"`
	Total      int         `json:"total"`
	Files      int         `json:"files"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []ItemError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}
