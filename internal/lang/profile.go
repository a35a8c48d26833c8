package lang

import (
	"fmt"
	"strings"
)

// ScanError は言語プロファイルの矛盾を表します。該当ファイルのみ致命的で、
// 他ファイルの走査には影響しません。
type ScanError struct {
	Lang   string
	Reason string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("invalid language profile %q: %s", e.Lang, e.Reason)
}

// BlockDelim はブロックコメントの開始・終了トークンの組です。
type BlockDelim struct {
	Open  string
	Close string
}

// QuoteStyle は 1 種類の文字列引用形式を表します。
type QuoteStyle struct {
	Quote byte
	// Raw はエスケープ処理を持たない形式（Go のバッククォートなど）。
	Raw bool
	// Interp はプレフィックスなしで常に補間を許す形式
	// （JS のテンプレートリテラルなど）。
	Interp bool
}

// Profile は 1 言語ぶんの字句プロファイルです。コードではなくデータであり、
// スキャナはこの内容だけを頼りに走査します。
type Profile struct {
	Name         string
	LineComments []string
	BlockDelims  []BlockDelim
	Quotes       []QuoteStyle
	// TripleQuotes が true のとき、Quotes の各引用符を 3 連打した
	// 形式（Python の """ / '''）も文字列として扱う。
	TripleQuotes bool
	// Escape は非 raw 文字列内のエスケープ文字。0 ならエスケープなし。
	Escape byte
	// RawPrefixes / InterpPrefixes は引用符の直前に付く 1 文字プレフィックス
	// （Python の r"..." / f"..."）。大文字小文字は区別しない。
	RawPrefixes    []byte
	InterpPrefixes []byte
	// InterpOpen / InterpClose は補間式の区切り（Python は "{" と "}"、
	// JS は "${" と "}"）。
	InterpOpen  string
	InterpClose string
	// DocstringStatements が true の言語では、文の唯一の式として現れる
	// 文字列リテラルをドキュメントとして扱う（Python の docstring 慣習）。
	DocstringStatements bool
}

// Validate はプロファイルの内部矛盾を検査します。引用符とコメント開始が
// 衝突するようなプロファイルは走査結果が定義できないため拒否します。
func (p Profile) Validate() error {
	if p.Name == "" {
		return &ScanError{Lang: "(unnamed)", Reason: "missing name"}
	}
	for _, b := range p.BlockDelims {
		if b.Open == "" || b.Close == "" {
			return &ScanError{Lang: p.Name, Reason: "block comment delimiter must have open and close tokens"}
		}
	}
	for _, c := range p.LineComments {
		if c == "" {
			return &ScanError{Lang: p.Name, Reason: "empty line comment prefix"}
		}
		for _, q := range p.Quotes {
			if strings.IndexByte(c, q.Quote) == 0 {
				return &ScanError{Lang: p.Name, Reason: fmt.Sprintf("quote %q collides with comment prefix %q", string(q.Quote), c)}
			}
		}
	}
	if (p.InterpOpen == "") != (p.InterpClose == "") {
		return &ScanError{Lang: p.Name, Reason: "interpolation delimiters must be paired"}
	}
	if len(p.InterpPrefixes) > 0 && p.InterpOpen == "" {
		return &ScanError{Lang: p.Name, Reason: "interpolation prefix without delimiters"}
	}
	seen := make(map[byte]struct{}, len(p.Quotes))
	for _, q := range p.Quotes {
		if q.Quote == 0 {
			return &ScanError{Lang: p.Name, Reason: "zero quote character"}
		}
		if _, dup := seen[q.Quote]; dup {
			return &ScanError{Lang: p.Name, Reason: fmt.Sprintf("duplicate quote %q", string(q.Quote))}
		}
		seen[q.Quote] = struct{}{}
	}
	return nil
}

// HasRawPrefix は b が raw プレフィックスかを返します。
func (p Profile) HasRawPrefix(b byte) bool { return containsFold(p.RawPrefixes, b) }

// HasInterpPrefix は b が補間プレフィックスかを返します。
func (p Profile) HasInterpPrefix(b byte) bool { return containsFold(p.InterpPrefixes, b) }

func containsFold(set []byte, b byte) bool {
	lower := b | 0x20
	for _, c := range set {
		if c|0x20 == lower {
			return true
		}
	}
	return false
}
