package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode は色出力の指定（auto / always / never）です。
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Enabled は実際に色を出すべきかを決めます。auto のときは NO_COLOR、
// TERM=dumb、端末かどうかを順に見ます。
func Enabled(mode ColorMode, f *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

const (
	reset = "\033[0m"
	dim   = "\033[2m"
	cyan  = "\033[36m"
)

// Dim は除外扱いの行などを薄く表示します。
func Dim(enabled bool, s string) string {
	if !enabled || s == "" {
		return s
	}
	return dim + s + reset
}

// Cyan は URL 列の強調に使います。
func Cyan(enabled bool, s string) string {
	if !enabled || s == "" {
		return s
	}
	return cyan + s + reset
}
