// Package report は分類済みマッチを Finding に組み立て、遅延シーケンス
// として公開します。
package report

import (
	"iter"
	"sort"
	"strings"

	"github.com/phyten/urlx/internal/classify"
	"github.com/phyten/urlx/internal/model"
)

// Report は 1 テキストぶんの確定済み Finding 集合です。生成後は読み取り
// 専用で、スキャナ側の状態への参照は持ちません。
type Report struct {
	findings []model.Finding
}

// Build は分類結果から Finding を組み立てます。行・桁は元テキストの
// 改行インデックスから計算した 1 始まりの値です。結果はオフセット昇順で、
// マッチ範囲は互いに重なりません。
func Build(text string, outcomes []classify.Outcome) *Report {
	index := newlineIndex(text)
	findings := make([]model.Finding, 0, len(outcomes))
	for _, o := range outcomes {
		line, col := lineCol(index, o.Match.Start)
		findings = append(findings, model.Finding{
			Offset:   o.Match.Start,
			Line:     line,
			Col:      col,
			URL:      o.Match.Text,
			Kind:     o.Kind,
			Excluded: o.Excluded,
		})
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Offset < findings[j].Offset
	})
	return &Report{findings: findings}
}

// Len は Finding の件数を返します。
func (r *Report) Len() int { return len(r.findings) }

// All は Finding をオフセット昇順で辿る再開可能な遅延シーケンスを
// 返します。何度でも最初から辿り直せます。
func (r *Report) All() iter.Seq[model.Finding] {
	return func(yield func(model.Finding) bool) {
		for _, f := range r.findings {
			if !yield(f) {
				return
			}
		}
	}
}

// Items は Finding 列のコピーを返します。
func (r *Report) Items() []model.Finding {
	out := make([]model.Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// newlineIndex は各行の開始オフセットの昇順リストを返します。
// 先頭要素は常に 0 です。
func newlineIndex(text string) []int {
	index := make([]int, 1, strings.Count(text, "\n")+1)
	index[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			index = append(index, i+1)
		}
	}
	return index
}

// lineCol はオフセットを 1 始まりの (行, 桁) に変換します。
func lineCol(index []int, offset int) (int, int) {
	idx := sort.Search(len(index), func(i int) bool { return index[i] > offset })
	lineStart := index[idx-1]
	return idx, offset - lineStart + 1
}
