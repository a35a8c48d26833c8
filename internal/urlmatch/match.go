// Package urlmatch は生テキストから URL 形状の部分文字列を検出します。
// テキストの出所（コード・コメント・文字列）には関知しません。
package urlmatch

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phyten/urlx/internal/model"
)

// スキーム付き形式と protocol-relative 形式の開始トークン。
// スキームの許可リストは持たない（sftp://, wss://, redis:// なども対象）。
var startRe = regexp.MustCompile(`(?:[A-Za-z][A-Za-z0-9+.\-]*:)?//`)

// Find は text 中の URL 出現をオフセット昇順で返します。マッチ同士は
// 重ならず、同じ開始位置では最長のものを採用します。URL らしき不正な
// 断片はエラーにならず、単にマッチを生みません。
func Find(text string) []model.RawMatch {
	var out []model.RawMatch
	pos := 0
	for pos < len(text) {
		loc := startRe.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		afterSlashes := pos + loc[1]
		scheme := ""
		if afterSlashes-start > 2 {
			scheme = text[start : afterSlashes-3]
		}

		end := extend(text, afterSlashes)
		if !validAuthority(text, afterSlashes, end, scheme) {
			pos = afterSlashes
			continue
		}
		out = append(out, model.RawMatch{Start: start, End: end, Text: text[start:end]})
		pos = end
	}
	return out
}

// extend はマッチを空白・引用符・終端文字の手前まで貪欲に伸ばします。
// パーセントエンコード・クエリ・フラグメント・認証情報・ポート・
// 補間プレースホルダはすべて通常の構成文字として扱います。
func extend(text string, from int) int {
	i := from
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isTerminator(r) {
			break
		}
		i += size
	}
	return i
}

func isTerminator(r rune) bool {
	if unicode.IsSpace(r) || r < 0x20 {
		return true
	}
	switch r {
	case '"', '\'', '`', '<', '>':
		return true
	}
	return false
}

// validAuthority は "//" 直後がオーソリティとして成立するかを検査します。
// 空オーソリティは file スキーム（file:///path）に限り許可します。
// スキームなしの protocol-relative 形式はホストらしさの担保として
// オーソリティにドットを要求します。
func validAuthority(text string, from, end int, scheme string) bool {
	if from >= end {
		return false
	}
	first := text[from]
	if first == '/' {
		return strings.EqualFold(scheme, "file")
	}
	if !isAuthorityStart(first) {
		return false
	}
	if scheme != "" {
		return true
	}
	authority := text[from:end]
	if idx := strings.IndexAny(authority, "/?#"); idx >= 0 {
		authority = authority[:idx]
	}
	return strings.Contains(authority, ".")
}

func isAuthorityStart(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '[', b == '%':
		return true
	}
	return false
}

// Scheme は URL のスキームを小文字で返します。protocol-relative 形式は
// 空文字列になります。
func Scheme(url string) string {
	idx := strings.Index(url, "://")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(url[:idx])
}

// Continuation は連結ジョインの続き側リテラルから、URL の続きとして
// 成立する先頭部分の長さを返します。
func Continuation(text string) int {
	return extend(text, 0)
}
