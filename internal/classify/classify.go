// Package classify は URL マッチを Span 表と突き合わせ、囲んでいる
// 構文要素と既定除外フラグを決定します。
package classify

import (
	"sort"
	"strings"

	"github.com/phyten/urlx/internal/lang"
	"github.com/phyten/urlx/internal/model"
	"github.com/phyten/urlx/internal/urlmatch"
)

// Policy は既定除外の方針です。構築時に固定され、以後変更されません。
// 方針の異なる走査を並行に走らせても互いに干渉しません。
type Policy struct {
	ExcludeComments   bool
	ExcludeDocstrings bool
}

// DefaultPolicy はコメントと docstring を既定で除外扱いにします。
func DefaultPolicy() Policy {
	return Policy{ExcludeComments: true, ExcludeDocstrings: true}
}

// Outcome は 1 件のマッチの分類結果です。連結ジョインをまたいだ場合、
// Match は結合後の範囲に拡張されています。
type Outcome struct {
	Match    model.RawMatch
	Kind     model.FindingKind
	Excluded bool
}

// Classifier は 1 回の走査に対する分類器です。テキスト・Span 表・
// プロファイル・方針のスナップショットを保持し、状態を変更しません。
type Classifier struct {
	text    string
	profile lang.Profile
	spans   []*model.Span
	policy  Policy
}

func New(text string, profile lang.Profile, spans []*model.Span, policy Policy) *Classifier {
	return &Classifier{text: text, profile: profile, spans: spans, policy: policy}
}

// ClassifyAll はマッチ列を分類し、オフセット昇順の結果を返します。
// 連結ジョインで拡張された範囲に飲み込まれたマッチは捨てられます。
func (c *Classifier) ClassifyAll(matches []model.RawMatch) []Outcome {
	out := make([]Outcome, 0, len(matches))
	lastEnd := 0
	for _, m := range matches {
		if m.Start < lastEnd {
			continue
		}
		o := c.Classify(m)
		out = append(out, o)
		lastEnd = o.Match.End
	}
	return out
}

// Classify は 1 件のマッチを包含オフセットで分類します。補間式の穴の
// 中にあるマッチは、囲んでいる文字列を透過してコードとして扱われます。
func (c *Classifier) Classify(m model.RawMatch) Outcome {
	idx := c.spanIndexAt(m.Start)
	if idx < 0 {
		return Outcome{Match: m, Kind: model.KindCode}
	}
	sp := c.spans[idx]
	switch sp.Kind {
	case model.SpanLineComment:
		return Outcome{Match: m, Kind: model.KindLineComment, Excluded: c.policy.ExcludeComments}
	case model.SpanBlockComment:
		return Outcome{Match: m, Kind: model.KindBlockComment, Excluded: c.policy.ExcludeComments}
	case model.SpanString:
		for _, child := range sp.Children {
			if child.Contains(m.Start) {
				// the enclosing string is transparent for interpolation code
				return Outcome{Match: m, Kind: model.KindCode}
			}
		}
		merged := c.mergeAcrossJoins(m, idx)
		kind := model.KindString
		excluded := false
		if sp.Statement && c.profile.DocstringStatements {
			kind = model.KindDocstring
			excluded = c.policy.ExcludeDocstrings
		}
		return Outcome{Match: merged, Kind: kind, Excluded: excluded}
	default:
		return Outcome{Match: m, Kind: model.KindCode}
	}
}

func (c *Classifier) spanIndexAt(offset int) int {
	idx := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].End > offset })
	if idx >= len(c.spans) || !c.spans[idx].Contains(offset) {
		return -1
	}
	return idx
}

// mergeAcrossJoins はリテラル本文の端まで達したマッチを、空白のみを挟んで
// 隣接する次の文字列リテラルへ延長します。ジョインが連鎖する場合は繰り返し
// 延長します（暗黙の文字列連結で分割された URL を 1 件に結合する）。
func (c *Classifier) mergeAcrossJoins(m model.RawMatch, idx int) model.RawMatch {
	cur := c.spans[idx]
	for m.End >= cur.ContentEnd {
		next, nextIdx := c.joinedString(idx)
		if next == nil {
			break
		}
		content := c.text[next.ContentStart:next.ContentEnd]
		n := urlmatch.Continuation(content)
		if n == 0 {
			break
		}
		m.End = next.ContentStart + n
		m.Text = m.Text + content[:n]
		cur = next
		idx = nextIdx
	}
	return m
}

// joinedString は spans[idx] の直後が連結ジョイン（間にコードなし、
// または空白のみのコード）で続く文字列リテラルならそれを返します。
func (c *Classifier) joinedString(idx int) (*model.Span, int) {
	i := idx + 1
	if i < len(c.spans) && c.spans[i].Kind == model.SpanCode {
		if strings.TrimSpace(c.text[c.spans[i].Start:c.spans[i].End]) != "" {
			return nil, 0
		}
		i++
	}
	if i < len(c.spans) && c.spans[i].Kind == model.SpanString {
		return c.spans[i], i
	}
	return nil, 0
}
