// Package web は scan 結果を閲覧する組み込み UI を提供します。
// アセットはバイナリに埋め込まれ、外部ファイルに依存しません。
package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"
)

var (
	//go:embed templates/index.html
	indexHTML string
	indexOnce sync.Once
	indexTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

// asset は埋め込み済みの静的ファイル 1 件です。
type asset struct {
	path        string
	contentType string
	body        string
}

func uiAssets() []asset {
	return []asset{
		{path: stylesPath, contentType: "text/css; charset=utf-8", body: stylesCSS},
		{path: scriptPath, contentType: "application/javascript; charset=utf-8", body: scriptJS},
	}
}

// Register attaches handlers for the web UI and its assets to the provided mux.
func Register(mux *http.ServeMux) {
	mux.HandleFunc("/", indexHandler)
	for _, a := range uiAssets() {
		mux.HandleFunc(a.path, a.serve)
	}
}

// ScriptSource returns the UI script as served to the browser.
func ScriptSource() string {
	return scriptJS
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	tmpl := loadTemplate()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
	if err := tmpl.Execute(w, struct {
		StylesPath string
		ScriptPath string
	}{stylesPath, scriptPath}); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func (a asset) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", a.contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(a.body))
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}
