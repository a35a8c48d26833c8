package lang

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Detect はパスと内容からファイルの言語名を推定します。拡張子・既知の
// ファイル名・シバンの順に照合し、判定できなければ空文字列を返します。
func Detect(path string, data []byte) string {
	if name := detectByPath(path); name != "" {
		return name
	}
	return detectByShebang(data)
}

func detectByPath(p string) string {
	base := strings.ToLower(filepath.Base(p))
	if name, ok := basenameLanguages[base]; ok {
		return name
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return ""
	}
	if name, ok := extensionLanguages[ext]; ok {
		return name
	}
	// composed extensions like foo.tf.json resolve by the inner extension
	stem := strings.TrimSuffix(base, ext)
	if inner := filepath.Ext(stem); inner != "" {
		if name, ok := extensionLanguages[inner]; ok {
			return name
		}
	}
	return ""
}

func detectByShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for key, name := range shebangLanguages {
		if strings.Contains(line, key) {
			return name
		}
	}
	return ""
}

// Normalize は言語名の別名を正規形へ揃えます。
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := aliases[n]; ok {
		return canon
	}
	return n
}

// CanonicalLangs は重複と空要素を除いた正規化済みの言語名リストを返します。
func CanonicalLangs(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		norm := Normalize(raw)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

var basenameLanguages = map[string]string{
	"makefile":       "make",
	"gnumakefile":    "make",
	"cmakelists.txt": "cmake",
	"dockerfile":     "dockerfile",
	"gemfile":        "ruby",
	"rakefile":       "ruby",
	"vagrantfile":    "ruby",
	"justfile":       "make",
	"pyproject.toml": "toml",
	"cargo.toml":     "toml",
	"setup.py":       "python",
	"pipfile":        "toml",
	"config.ru":      "ruby",
}

var extensionLanguages = map[string]string{
	".c":          "c",
	".h":          "c",
	".cc":         "cpp",
	".cpp":        "cpp",
	".cxx":        "cpp",
	".hh":         "cpp",
	".hpp":        "cpp",
	".m":          "objective-c",
	".go":         "go",
	".js":         "javascript",
	".mjs":        "javascript",
	".cjs":        "javascript",
	".jsx":        "javascriptreact",
	".ts":         "typescript",
	".tsx":        "typescriptreact",
	".py":         "python",
	".pyw":        "python",
	".pyi":        "python",
	".pyx":        "cython",
	".rb":         "ruby",
	".rake":       "ruby",
	".gemspec":    "ruby",
	".php":        "php",
	".cs":         "csharp",
	".java":       "java",
	".kt":         "kotlin",
	".kts":        "kotlin",
	".scala":      "scala",
	".swift":      "swift",
	".rs":         "rust",
	".dart":       "dart",
	".ex":         "elixir",
	".exs":        "elixir",
	".hs":         "haskell",
	".ml":         "ocaml",
	".mli":        "ocaml",
	".lua":        "lua",
	".jl":         "julia",
	".nim":        "nim",
	".sh":         "shell",
	".bash":       "shell",
	".zsh":        "shell",
	".ksh":        "shell",
	".fish":       "fish",
	".pl":         "perl",
	".pm":         "perl",
	".ps1":        "powershell",
	".psm1":       "powershell",
	".sql":        "sql",
	".pgsql":      "sql",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".ini":        "ini",
	".cfg":        "ini",
	".conf":       "ini",
	".properties": "properties",
	".env":        "dotenv",
	".html":       "html",
	".htm":        "html",
	".xml":        "xml",
	".svg":        "xml",
	".vue":        "vue",
	".svelte":     "svelte",
	".css":        "css",
	".scss":       "scss",
	".less":       "less",
	".proto":      "proto",
	".hcl":        "hcl",
	".tf":         "terraform",
	".tfvars":     "terraform",
	".bzl":        "starlark",
	".star":       "starlark",
	".bazel":      "starlark",
	".mk":         "make",
	".make":       "make",
	".dockerfile": "dockerfile",
	".cmake":      "cmake",
}

var aliases = map[string]string{
	"c#":       "csharp",
	"cs":       "csharp",
	"c++":      "cpp",
	"cc":       "cpp",
	"js":       "javascript",
	"mjs":      "javascript",
	"jsx":      "javascriptreact",
	"ts":       "typescript",
	"tsx":      "typescriptreact",
	"kt":       "kotlin",
	"rb":       "ruby",
	"py":       "python",
	"ps1":      "powershell",
	"bash":     "shell",
	"sh":       "shell",
	"zsh":      "shell",
	"tf":       "terraform",
	"yml":      "yaml",
	"golang":   "go",
	"htm":      "html",
	"makefile": "make",
}

var shebangLanguages = map[string]string{
	"python":  "python",
	"python3": "python",
	"node":    "javascript",
	"deno":    "javascript",
	"perl":    "perl",
	"ruby":    "ruby",
	"php":     "php",
	"bash":    "shell",
	"sh":      "shell",
	"zsh":     "shell",
	"fish":    "fish",
	"pwsh":    "powershell",
	"lua":     "lua",
	"elixir":  "elixir",
}
