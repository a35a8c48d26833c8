package util

import (
	"sync"
	"testing"
)

func TestShouldShowProgress(t *testing.T) {
	if ShouldShowProgress(true, true) {
		t.Error("no wins over force")
	}
	if !ShouldShowProgress(true, false) {
		t.Error("force should enable progress")
	}
}

// 無効状態でもワーカーから並行に呼べる
func TestProgressDisabledIsSafe(t *testing.T) {
	p := NewProgress(100, false)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p.Advance()
			}
		}()
	}
	wg.Wait()
	p.Done()
}

func TestPercent(t *testing.T) {
	if percent(0, 0) != 100 {
		t.Error("0/0 is treated as done")
	}
	if percent(1, 4) != 25 {
		t.Errorf("got %d", percent(1, 4))
	}
	if percent(4, 4) != 100 {
		t.Errorf("got %d", percent(4, 4))
	}
}
