package link

import (
	"fmt"
	"strings"
)

// Hyperlink は OSC 8 形式の端末ハイパーリンクを生成します。
// 対応していない端末でもテキスト部分はそのまま表示されます。
func Hyperlink(url, text string) string {
	if url == "" || text == "" {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", sanitize(url), text)
}

// Target は検出 URL をリンク先として使える形に整えます。
// protocol-relative な URL は https を仮定します。
func Target(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

// sanitize は OSC シーケンスを壊す制御文字を取り除きます。
func sanitize(url string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, url)
}
