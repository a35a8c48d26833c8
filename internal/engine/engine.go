package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/urlx/internal/classify"
	"github.com/phyten/urlx/internal/lang"
	"github.com/phyten/urlx/internal/model"
	"github.com/phyten/urlx/internal/report"
	"github.com/phyten/urlx/internal/scan"
	"github.com/phyten/urlx/internal/urlmatch"
	"github.com/phyten/urlx/internal/util"
)

// Run は指定されたオプションに従ってファイルツリーを走査し、URL 検出の
// 一覧とメタデータを返します。
//
// ファイル単位の失敗は Result.Errors に集約され、他ファイルの走査を
// 止めません。キャンセルはファイル粒度で協調的に行われ、途中結果が
// 部分的に出力されることはありません。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if strings.TrimSpace(opts.RootDir) == "" {
		opts.RootDir = "."
	}

	files, err := listFiles(opts.RootDir, opts.Paths, opts.Excludes, opts.ExcludeTypical)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &Result{Items: nil, Total: 0, Files: 0, ElapsedMS: msSince(start)}, nil
	}

	schemes := schemeSet(opts.Schemes)
	prog := util.NewProgress(len(files), opts.Progress)

	var mu sync.Mutex
	var items []Item
	var errs []ItemError
	scanned := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for _, rel := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		g.Go(func() error {
			fileItems, fileErr := scanFile(opts, schemes, rel)
			mu.Lock()
			scanned++
			if fileErr != nil {
				errs = append(errs, *fileErr)
			}
			items = append(items, fileItems...)
			mu.Unlock()
			prog.Advance()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	prog.Done()

	// stable order by file:line:col
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].File != items[j].File {
			return items[i].File < items[j].File
		}
		if items[i].Line != items[j].Line {
			return items[i].Line < items[j].Line
		}
		return items[i].Col < items[j].Col
	})
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].File == errs[j].File {
			return errs[i].Stage < errs[j].Stage
		}
		return errs[i].File < errs[j].File
	})

	if opts.Dedupe {
		items = dedupeItems(items)
	}

	return &Result{
		Items:      items,
		Total:      len(items),
		Files:      scanned,
		ElapsedMS:  msSince(start),
		Errors:     errs,
		ErrorCount: len(errs),
	}, nil
}

// scanFile は 1 ファイルを読み、スキャン・マッチ・分類・整形の
// パイプラインを通します。対象外ファイルは黙って飛ばします。
func scanFile(opts Options, schemes map[string]struct{}, rel string) ([]Item, *ItemError) {
	full := filepath.Join(opts.RootDir, rel)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, newItemError(rel, "read", err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, nil
	}
	if opts.MaxFileBytes > 0 && len(data) > opts.MaxFileBytes {
		return nil, nil
	}
	name := lang.Detect(rel, data)
	if len(opts.Langs) > 0 && !matchesLang(name, opts.Langs) {
		return nil, nil
	}
	profile, ok := lang.ProfileFor(name)
	if !ok {
		return nil, nil
	}

	text := string(data)
	spans, err := scan.Scan(text, profile)
	if err != nil {
		return nil, newItemError(rel, "scan", err)
	}
	matches := urlmatch.Find(text)
	if len(matches) == 0 {
		return nil, nil
	}
	cls := classify.New(text, profile, spans, classify.DefaultPolicy())
	rep := report.Build(text, cls.ClassifyAll(matches))

	var items []Item
	for f := range rep.All() {
		if f.Excluded && !includeExcluded(f.Kind, opts) {
			continue
		}
		if len(schemes) > 0 {
			if _, ok := schemes[urlmatch.Scheme(f.URL)]; !ok {
				continue
			}
		}
		items = append(items, Item{
			URL:      f.URL,
			Kind:     f.Kind,
			File:     rel,
			Line:     f.Line,
			Col:      f.Col,
			Offset:   f.Offset,
			Lang:     lang.Normalize(name),
			Excluded: f.Excluded,
		})
	}
	return items, nil
}

func includeExcluded(kind model.FindingKind, opts Options) bool {
	switch kind {
	case model.KindLineComment, model.KindBlockComment:
		return opts.IncludeComments
	case model.KindDocstring:
		return opts.IncludeDocstrings
	default:
		return true
	}
}

func matchesLang(name string, allow []string) bool {
	detected := lang.Normalize(name)
	if detected == "" {
		return false
	}
	for _, raw := range allow {
		if lang.Normalize(raw) == detected {
			return true
		}
	}
	return false
}

func schemeSet(schemes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(schemes))
	for _, s := range schemes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || s == "any" {
			return nil
		}
		set[s] = struct{}{}
	}
	return set
}

// dedupeItems は URL 文字列単位で最初の出現だけを残します。
// 入力は file:line:col でソート済みであることを前提とします。
func dedupeItems(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, ok := seen[it.URL]; ok {
			continue
		}
		seen[it.URL] = struct{}{}
		out = append(out, it)
	}
	return out
}

func newItemError(file, stage string, err error) *ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return &ItemError{File: file, Stage: stage, Message: msg}
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
