package scan

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/phyten/urlx/internal/lang"
	"github.com/phyten/urlx/internal/model"
)

// DecodeError は入力テキストが正しい UTF-8 でないことを表します。
// 該当ファイルの走査だけを中断し、他ファイルには影響しません。
type DecodeError struct {
	Pos int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte %d", e.Pos)
}

// Scan はソーステキストを 1 パスで走査し、分類済み Span の列を返します。
//
// 返される列はテキスト全体を隙間なく重複なく覆います。閉じられないまま
// 入力が尽きた文字列・コメントはエラーにせず EOF で閉じます。補間式の
// 穴は親の文字列 Span の子としてコード Span を再帰的に記録します。
func Scan(text string, p lang.Profile) ([]*model.Span, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(text) {
		return nil, &DecodeError{Pos: invalidAt(text)}
	}

	s := &scanner{text: text, profile: p}
	s.run()
	markStatements(text, s.spans)
	return s.spans, nil
}

func invalidAt(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(text)
}

type scanner struct {
	text    string
	profile lang.Profile
	spans   []*model.Span
}

func (s *scanner) run() {
	text := s.text
	codeStart := 0
	i := 0
	for i < len(text) {
		if open, close, ok := s.blockOpenAt(i); ok {
			s.flushCode(codeStart, i)
			i = s.scanBlockComment(i, open, close)
			codeStart = i
			continue
		}
		if prefix, ok := s.lineCommentAt(i); ok {
			s.flushCode(codeStart, i)
			i = s.scanLineComment(i, prefix)
			codeStart = i
			continue
		}
		if style, start, raw, interp, ok := s.quoteAt(i, codeStart); ok {
			s.flushCode(codeStart, start)
			i = s.scanString(start, i, style, raw, interp)
			codeStart = i
			continue
		}
		i++
	}
	s.flushCode(codeStart, len(text))
}

func (s *scanner) flushCode(start, end int) {
	if end <= start {
		return
	}
	s.spans = append(s.spans, &model.Span{
		Start: start, End: end,
		Kind:    model.SpanCode,
		Quoting: model.QuoteNone,
		ContentStart: start, ContentEnd: end,
	})
}

func (s *scanner) blockOpenAt(i int) (string, string, bool) {
	for _, b := range s.profile.BlockDelims {
		if !strings.HasPrefix(s.text[i:], b.Open) {
			continue
		}
		// line-anchored delimiters like Ruby's =begin
		if b.Open[0] == '=' && i > 0 && s.text[i-1] != '\n' {
			continue
		}
		return b.Open, b.Close, true
	}
	return "", "", false
}

func (s *scanner) lineCommentAt(i int) (string, bool) {
	for _, c := range s.profile.LineComments {
		if strings.HasPrefix(s.text[i:], c) {
			return c, true
		}
	}
	return "", false
}

// quoteAt はコード位置 i が文字列の開始かを判定します。開始であれば、
// raw/補間プレフィックスを含めた Span の開始位置とフラグを返します。
func (s *scanner) quoteAt(i, codeStart int) (lang.QuoteStyle, int, bool, bool, bool) {
	q := s.text[i]
	for _, style := range s.profile.Quotes {
		if style.Quote != q {
			continue
		}
		start := i
		raw := style.Raw
		interp := style.Interp
		// look back for single-letter prefixes directly attached to the quote
		for start > codeStart {
			b := s.text[start-1]
			if s.profile.HasRawPrefix(b) {
				raw = true
			} else if s.profile.HasInterpPrefix(b) {
				interp = true
			} else {
				break
			}
			start--
		}
		// prefix letters glued to a longer identifier belong to that
		// identifier; the quote still opens an unprefixed string
		if start < i && start > 0 && isIdentByte(s.text[start-1]) {
			start = i
			raw = style.Raw
			interp = style.Interp
		}
		return style, start, raw, interp, true
	}
	return lang.QuoteStyle{}, 0, false, false, false
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b|0x20 >= 'a' && b|0x20 <= 'z')
}

func (s *scanner) scanLineComment(i int, prefix string) int {
	eol := strings.IndexByte(s.text[i:], '\n')
	end := len(s.text)
	if eol >= 0 {
		end = i + eol
	}
	s.spans = append(s.spans, &model.Span{
		Start: i, End: end,
		Kind:    model.SpanLineComment,
		Quoting: model.QuoteNone,
		ContentStart: i + len(prefix), ContentEnd: end,
	})
	return end
}

func (s *scanner) scanBlockComment(i int, open, close string) int {
	contentStart := i + len(open)
	idx := strings.Index(s.text[contentStart:], close)
	end := len(s.text)
	contentEnd := len(s.text)
	if idx >= 0 {
		contentEnd = contentStart + idx
		end = contentEnd + len(close)
	}
	s.spans = append(s.spans, &model.Span{
		Start: i, End: end,
		Kind:    model.SpanBlockComment,
		Quoting: model.QuoteNone,
		ContentStart: contentStart, ContentEnd: contentEnd,
	})
	return end
}

// scanString は start（プレフィックス込みの開始位置）から文字列を走査します。
// quotePos は開き引用符の位置です。
func (s *scanner) scanString(start, quotePos int, style lang.QuoteStyle, raw, interp bool) int {
	text := s.text
	q := style.Quote
	closeLen := 1
	quoting := quotingFor(q, raw)
	if s.profile.TripleQuotes && !style.Raw &&
		quotePos+3 <= len(text) && text[quotePos+1] == q && text[quotePos+2] == q {
		closeLen = 3
		if q == '\'' {
			quoting = model.QuoteTripleSingle
		} else {
			quoting = model.QuoteTripleDouble
		}
	}
	contentStart := quotePos + closeLen
	span := &model.Span{
		Start:   start,
		Kind:    model.SpanString,
		Quoting: quoting,
	}
	span.ContentStart = contentStart

	interpOpen := s.profile.InterpOpen
	interpClose := s.profile.InterpClose
	canInterp := interp && interpOpen != ""

	k := contentStart
	for k < len(text) {
		if !raw && s.profile.Escape != 0 && text[k] == s.profile.Escape {
			k += 2
			continue
		}
		if canInterp && strings.HasPrefix(text[k:], interpOpen) {
			// doubled delimiter is a literal ("{{" in f-strings)
			if len(interpOpen) == 1 && k+1 < len(text) && text[k+1] == interpOpen[0] {
				k += 2
				continue
			}
			childStart := k + len(interpOpen)
			childEnd, closed := s.findInterpClose(childStart, interpOpen, interpClose)
			if closed {
				span.Interpolated = true
				span.Children = append(span.Children, &model.Span{
					Start: childStart, End: childEnd,
					Kind:    model.SpanCode,
					Quoting: model.QuoteNone,
					ContentStart: childStart, ContentEnd: childEnd,
				})
				k = childEnd + len(interpClose)
				continue
			}
		}
		if text[k] == q {
			if closeLen == 3 {
				if k+3 <= len(text) && text[k+1] == q && text[k+2] == q {
					span.ContentEnd = k
					span.End = k + 3
					s.spans = append(s.spans, span)
					return span.End
				}
			} else {
				span.ContentEnd = k
				span.End = k + 1
				s.spans = append(s.spans, span)
				return span.End
			}
		}
		k++
	}
	// unterminated: close at end of input, not an error
	span.ContentEnd = len(text)
	span.End = len(text)
	s.spans = append(s.spans, span)
	return span.End
}

// findInterpClose は補間式の閉じ区切りを深さを数えながら探します。
func (s *scanner) findInterpClose(from int, open, close string) (int, bool) {
	openByte := open[len(open)-1]
	closeByte := close[0]
	depth := 1
	for m := from; m < len(s.text); m++ {
		switch s.text[m] {
		case closeByte:
			depth--
			if depth == 0 {
				return m, true
			}
		case openByte:
			depth++
		}
	}
	return 0, false
}

func quotingFor(q byte, raw bool) model.Quoting {
	if raw {
		return model.QuoteRaw
	}
	switch q {
	case '\'':
		return model.QuoteSingle
	case '`':
		return model.QuoteBacktick
	default:
		return model.QuoteDouble
	}
}

// markStatements は文の唯一の式として現れた文字列リテラルに Statement を
// 立てます。開始行の文字列より前と、終了位置から行末までが共に空白のみで、
// かつ括弧 ()[]{} の入れ子の外にあることを条件とします。リストや引数の
// 要素は改行で行を独占していても文にはなりません。
func markStatements(text string, spans []*model.Span) {
	depth := 0
	for _, sp := range spans {
		if sp.Kind == model.SpanCode {
			depth += bracketDelta(text[sp.Start:sp.End])
			if depth < 0 {
				depth = 0
			}
			continue
		}
		if sp.Kind != model.SpanString || depth > 0 {
			continue
		}
		lineStart := strings.LastIndexByte(text[:sp.Start], '\n') + 1
		if strings.TrimSpace(text[lineStart:sp.Start]) != "" {
			continue
		}
		// backslash continuation glues the literal to the previous line
		if prev := strings.TrimRight(text[:lineStart], " \t\r\n"); strings.HasSuffix(prev, "\\") {
			continue
		}
		lineEnd := len(text)
		if idx := strings.IndexByte(text[sp.End:], '\n'); idx >= 0 {
			lineEnd = sp.End + idx
		}
		if strings.TrimSpace(text[sp.End:lineEnd]) != "" {
			continue
		}
		sp.Statement = true
	}
}

func bracketDelta(code string) int {
	d := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '(', '[', '{':
			d++
		case ')', ']', '}':
			d--
		}
	}
	return d
}
