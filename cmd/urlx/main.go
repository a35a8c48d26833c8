package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/browser"

	"github.com/phyten/urlx/internal/config"
	"github.com/phyten/urlx/internal/engine"
	engineopts "github.com/phyten/urlx/internal/engine/opts"
	"github.com/phyten/urlx/internal/output"
	"github.com/phyten/urlx/internal/termcolor"
	"github.com/phyten/urlx/internal/util"
	"github.com/phyten/urlx/internal/web"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serveCmd(os.Args[2:])
		return
	}
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "scan" {
		args = args[1:]
	}
	scanCmd(args)
}

func scanCmd(args []string) {
	fs := flag.NewFlagSet("urlx", flag.ExitOnError)

	var (
		root          = fs.String("root", ".", "scan root (default: current dir)")
		paths         = fs.String("path", "", "limit to paths/globs (comma separated)")
		excludes      = fs.String("exclude", "", "exclude paths/globs (comma separated)")
		langs         = fs.String("lang", "", "limit to languages (comma separated)")
		schemes       = fs.String("scheme", "", "limit to URL schemes, or 'any' (comma separated)")
		withComments  = fs.Bool("include-comments", false, "report URLs found in comments")
		withDocs      = fs.Bool("include-docstrings", false, "report URLs found in docstrings")
		dedupe        = fs.Bool("dedupe", false, "report each URL once")
		exclTypical   = fs.Bool("exclude-typical", false, "skip node_modules, vendor, build dirs etc.")
		jobs          = fs.Int("jobs", 0, "max parallel workers (0=auto)")
		maxFileBytes  = fs.Int("max-file-bytes", 0, "skip files larger than N bytes (0=unlimited)")
		outputFmt     = fs.String("output", "table", "table|tsv|json|csv|ndjson|md")
		fields        = fs.String("fields", "", "columns to print (comma separated)")
		sortSpec      = fs.String("sort", "", "sort order, e.g. 'file,line' or '-url'")
		truncate      = fs.Int("truncate", 0, "truncate URL column to N cells (0=unlimited)")
		colorMode     = fs.String("color", "auto", "auto|always|never")
		hyperlink     = fs.Bool("hyperlink", false, "emit OSC 8 terminal hyperlinks in table output")
		noProgress    = fs.Bool("no-progress", false, "disable progress/ETA")
		forceProg     = fs.Bool("progress", false, "force progress even when piped")
		configPath    = fs.String("config", "", "config file (default: .urlx.* in root, then XDG)")
		noConfig      = fs.Bool("no-config", false, "ignore config files and URLX_* environment")
		printExcluded = fs.Bool("with-excluded", false, "keep included comment/docstring hits marked instead of a plain row")
	)
	_ = fs.Parse(args)
	if fs.NArg() > 0 {
		log.Fatalf("unexpected argument: %s", fs.Arg(0))
	}

	setFlags := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	opts := engineopts.Defaults(*root)

	uiFields := *fields
	uiSort := *sortSpec
	uiTruncate := *truncate
	outFmt := *outputFmt
	colorRaw := *colorMode

	if !*noConfig {
		cfg, err := loadConfig(*configPath, *root)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Engine.Apply(&opts)
		if cfg.Engine.Output != nil && !setFlags["output"] {
			outFmt = *cfg.Engine.Output
		}
		if cfg.Engine.Color != nil && !setFlags["color"] {
			colorRaw = *cfg.Engine.Color
		}
		if cfg.UI.Fields != nil && !setFlags["fields"] {
			uiFields = *cfg.UI.Fields
		}
		if cfg.UI.Sort != nil && !setFlags["sort"] {
			uiSort = *cfg.UI.Sort
		}
		if cfg.UI.Truncate != nil && !setFlags["truncate"] {
			uiTruncate = *cfg.UI.Truncate
		}
	}

	// フラグで明示された値が設定ファイル・環境変数より優先される
	if setFlags["root"] {
		opts.RootDir = *root
	}
	if setFlags["path"] {
		opts.Paths = engineopts.SplitMulti([]string{*paths})
	}
	if setFlags["exclude"] {
		opts.Excludes = engineopts.SplitMulti([]string{*excludes})
	}
	if setFlags["lang"] {
		opts.Langs = engineopts.SplitMulti([]string{*langs})
	}
	if setFlags["scheme"] {
		opts.Schemes = engineopts.SplitMulti([]string{*schemes})
	}
	if setFlags["include-comments"] {
		opts.IncludeComments = *withComments
	}
	if setFlags["include-docstrings"] {
		opts.IncludeDocstrings = *withDocs
	}
	if setFlags["dedupe"] {
		opts.Dedupe = *dedupe
	}
	if setFlags["exclude-typical"] {
		opts.ExcludeTypical = *exclTypical
	}
	if setFlags["jobs"] && *jobs > 0 {
		opts.Jobs = *jobs
	}
	if setFlags["max-file-bytes"] {
		opts.MaxFileBytes = *maxFileBytes
	}
	opts.Progress = util.ShouldShowProgress(*forceProg, *noProgress)

	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		log.Fatal(err)
	}
	outFmt, err := engineopts.NormalizeOutput(outFmt)
	if err != nil {
		log.Fatal(err)
	}
	mode, err := termcolor.ParseMode(colorRaw)
	if err != nil {
		log.Fatal(err)
	}
	sel, err := output.ResolveFields(uiFields, *printExcluded || opts.IncludeComments || opts.IncludeDocstrings)
	if err != nil {
		log.Fatal(err)
	}
	less, err := parseSortSpec(uiSort)
	if err != nil {
		log.Fatal(err)
	}

	res, err := engine.Run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	if less != nil {
		sortItems(res.Items, less)
	}

	switch outFmt {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			log.Fatal(err)
		}
	case "csv":
		if err := output.WriteCSV(os.Stdout, res.Items, sel); err != nil {
			log.Fatal(err)
		}
	case "ndjson":
		if err := output.WriteNDJSON(os.Stdout, res.Items); err != nil {
			log.Fatal(err)
		}
	case "md":
		if err := output.WriteMarkdownTable(os.Stdout, res.Items, sel); err != nil {
			log.Fatal(err)
		}
	case "tsv":
		printTSV(os.Stdout, res.Items, sel)
	default: // table
		printTable(os.Stdout, res.Items, sel, tableStyle{
			Color:     termcolor.Enabled(mode, os.Stdout),
			Hyperlink: *hyperlink,
			Truncate:  uiTruncate,
		})
	}

	reportErrors(res.Errors)
}

func loadConfig(explicit, root string) (config.Config, error) {
	path := strings.TrimSpace(explicit)
	if path == "" {
		path = config.Find(root)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	return config.Merge(fileCfg, envCfg), nil
}

func reportErrors(errs []engine.ItemError) {
	for _, e := range errs {
		log.Printf("warning: %s (%s): %s", e.File, e.Stage, e.Message)
	}
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		port = fs.Int("p", 8080, "port")
		root = fs.String("root", ".", "scan root")
		open = fs.Bool("open", false, "open the UI in a browser")
	)
	_ = fs.Parse(args)

	mux := newServeMux(*root)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("urlx serve listening on %s (root=%s)", addr, mustAbs(*root))
	if *open {
		go func() {
			time.Sleep(300 * time.Millisecond)
			if err := browser.OpenURL(fmt.Sprintf("http://localhost:%d/", *port)); err != nil {
				log.Printf("open browser: %v", err)
			}
		}()
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}

func newServeMux(root string) *http.ServeMux {
	mux := http.NewServeMux()
	web.Register(mux)
	mux.HandleFunc("/api/scan", func(w http.ResponseWriter, r *http.Request) {
		def := engineopts.Defaults(root)
		opts, err := engineopts.ApplyWebQueryToOptions(def, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// サーバ経由では常に指定ルート配下のみを見る
		opts.RootDir = root
		if err := engineopts.NormalizeAndValidate(&opts); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := engine.Run(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(res)
	})
	return mux
}

func mustAbs(p string) string {
	a, _ := filepath.Abs(p)
	return a
}
