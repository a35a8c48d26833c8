package model

// SpanKind は走査で分類される領域の種別を表します。
type SpanKind string

const (
	SpanCode         SpanKind = "code"
	SpanLineComment  SpanKind = "line_comment"
	SpanBlockComment SpanKind = "block_comment"
	SpanString       SpanKind = "string"
)

// Quoting は文字列リテラルの引用形式を表します。
type Quoting string

const (
	QuoteNone         Quoting = "none"
	QuoteSingle       Quoting = "single"
	QuoteDouble       Quoting = "double"
	QuoteTripleSingle Quoting = "triple_single"
	QuoteTripleDouble Quoting = "triple_double"
	QuoteRaw          Quoting = "raw"
	QuoteBacktick     Quoting = "backtick"
)

// Span はソーステキスト中の連続した分類済み領域です。
//
// トップレベルの Span 列はテキスト全体 [0, len(text)) を隙間なく
// 重複なく覆います。文字列 Span は補間式の穴を子のコード Span として
// 保持します（子は親の範囲から切り出され、親の ContentStart/ContentEnd
// の内側に収まります）。
type Span struct {
	Start        int
	End          int
	Kind         SpanKind
	Quoting      Quoting
	Interpolated bool
	// Statement は文字列リテラルが文の唯一の式として現れたことを示す
	// （docstring 候補）。文字列 Span 以外では常に false。
	Statement bool
	// ContentStart/ContentEnd は引用符・プレフィックスを除いた
	// リテラル本文の範囲。文字列以外の Span では Start/End と一致する。
	ContentStart int
	ContentEnd   int
	Children     []*Span
}

// Contains は offset がこの Span の範囲内かを返します。
func (s *Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// RawMatch は URL 文法にマッチした生テキスト上の 1 箇所です。
// Span 境界とは独立に生成されます。
type RawMatch struct {
	Start int
	End   int
	Text  string
}

// FindingKind は検出 URL を囲む構文要素の種別です。
type FindingKind string

const (
	KindCode         FindingKind = "code"
	KindString       FindingKind = "string"
	KindLineComment  FindingKind = "line_comment"
	KindBlockComment FindingKind = "block_comment"
	KindDocstring    FindingKind = "docstring"
)

// Finding は分類済みの URL 検出 1 件です。行・桁は 1 始まり。
type Finding struct {
	Offset   int
	Line     int
	Col      int
	URL      string
	Kind     FindingKind
	Excluded bool
}
