package util

import (
	"fmt"
	"os"
	"sync"
	"time"
)

func isTTY(f *os.File) bool {
	fi, _ := f.Stat()
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

// Progress はファイル数ベースの進捗と ETA を stderr に表示します。
// 複数ワーカーから Advance を呼んでも安全です。
type Progress struct {
	mu      sync.Mutex
	total   int
	done    int
	start   time.Time
	enabled bool
}

func NewProgress(total int, enabled bool) *Progress {
	return &Progress{total: total, start: time.Now(), enabled: enabled}
}

func (p *Progress) Advance() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	elapsed := time.Since(p.start)
	eta := "-"
	if p.done > 0 {
		remain := time.Duration(float64(elapsed) * float64(p.total-p.done) / float64(p.done))
		eta = fmt.Sprintf("%02d:%02d:%02d", int(remain.Hours()), int(remain.Minutes())%60, int(remain.Seconds())%60)
	}
	// clear line and print
	fmt.Fprintf(os.Stderr, "\r\033[K[progress] %d/%d (%d%%) ETA %s",
		p.done, p.total, percent(p.done, p.total), eta)
}

func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(os.Stderr, "\r\033[K")
}

func percent(a, b int) int {
	if b == 0 {
		return 100
	}
	return int(float64(a) * 100 / float64(b))
}
