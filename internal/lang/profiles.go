package lang

var (
	profileC = Profile{
		Name:         "c",
		LineComments: []string{"//"},
		BlockDelims:  []BlockDelim{{Open: "/*", Close: "*/"}},
		Quotes:       []QuoteStyle{{Quote: '"'}, {Quote: '\''}},
		Escape:       '\\',
	}
	profileGo = Profile{
		Name:         "go",
		LineComments: []string{"//"},
		BlockDelims:  []BlockDelim{{Open: "/*", Close: "*/"}},
		Quotes:       []QuoteStyle{{Quote: '"'}, {Quote: '\''}, {Quote: '`', Raw: true}},
		Escape:       '\\',
	}
	profileJS = Profile{
		Name:         "javascript",
		LineComments: []string{"//"},
		BlockDelims:  []BlockDelim{{Open: "/*", Close: "*/"}},
		Quotes:       []QuoteStyle{{Quote: '"'}, {Quote: '\''}, {Quote: '`', Interp: true}},
		Escape:       '\\',
		InterpOpen:   "${",
		InterpClose:  "}",
	}
	profilePython = Profile{
		Name:                "python",
		LineComments:        []string{"#"},
		Quotes:              []QuoteStyle{{Quote: '"'}, {Quote: '\''}},
		TripleQuotes:        true,
		Escape:              '\\',
		RawPrefixes:         []byte{'r'},
		InterpPrefixes:      []byte{'f'},
		InterpOpen:          "{",
		InterpClose:         "}",
		DocstringStatements: true,
	}
	profileRuby = Profile{
		Name:         "ruby",
		LineComments: []string{"#"},
		BlockDelims:  []BlockDelim{{Open: "=begin", Close: "=end"}},
		Quotes:       []QuoteStyle{{Quote: '"', Interp: true}, {Quote: '\''}},
		Escape:       '\\',
		InterpOpen:   "#{",
		InterpClose:  "}",
	}
	profileShell = Profile{
		Name:         "shell",
		LineComments: []string{"#"},
		Quotes:       []QuoteStyle{{Quote: '"'}, {Quote: '\'', Raw: true}},
		Escape:       '\\',
	}
	profileHash = Profile{
		Name:         "hash",
		LineComments: []string{"#"},
		Quotes:       []QuoteStyle{{Quote: '"'}, {Quote: '\''}},
		Escape:       '\\',
	}
	profileSQL = Profile{
		Name:         "sql",
		LineComments: []string{"--"},
		BlockDelims:  []BlockDelim{{Open: "/*", Close: "*/"}},
		Quotes:       []QuoteStyle{{Quote: '\''}},
	}
	profileHTML = Profile{
		Name:        "html",
		BlockDelims: []BlockDelim{{Open: "<!--", Close: "-->"}},
		Quotes:      []QuoteStyle{{Quote: '"'}, {Quote: '\''}},
	}
	profileCSS = Profile{
		Name:        "css",
		BlockDelims: []BlockDelim{{Open: "/*", Close: "*/"}},
		Quotes:      []QuoteStyle{{Quote: '"'}, {Quote: '\''}},
	}
	profileIni = Profile{
		Name:         "ini",
		LineComments: []string{";", "#"},
		Quotes:       []QuoteStyle{{Quote: '"'}},
	}
	profileLua = Profile{
		Name:         "lua",
		LineComments: []string{"--"},
		BlockDelims:  []BlockDelim{{Open: "--[[", Close: "]]"}},
		Quotes:       []QuoteStyle{{Quote: '"'}, {Quote: '\''}},
		Escape:       '\\',
	}
	profileHaskell = Profile{
		Name:         "haskell",
		LineComments: []string{"--"},
		BlockDelims:  []BlockDelim{{Open: "{-", Close: "-}"}},
		Quotes:       []QuoteStyle{{Quote: '"'}},
		Escape:       '\\',
	}
	profilePowershell = Profile{
		Name:         "powershell",
		LineComments: []string{"#"},
		BlockDelims:  []BlockDelim{{Open: "<#", Close: "#>"}},
		Quotes:       []QuoteStyle{{Quote: '"'}, {Quote: '\'', Raw: true}},
		Escape:       '`',
	}
)

var languageProfiles = map[string]Profile{
	"c":               profileC,
	"cpp":             profileC,
	"objective-c":     profileC,
	"java":            profileC,
	"csharp":          profileC,
	"kotlin":          profileC,
	"scala":           profileC,
	"swift":           profileC,
	"rust":            profileC,
	"dart":            profileC,
	"proto":           profileC,
	"go":              profileGo,
	"javascript":      profileJS,
	"javascriptreact": profileJS,
	"typescript":      profileJS,
	"typescriptreact": profileJS,
	"php":             profileJS,
	"python":          profilePython,
	"starlark":        profilePython,
	"cython":          profilePython,
	"ruby":            profileRuby,
	"shell":           profileShell,
	"fish":            profileShell,
	"perl":            profileHash,
	"yaml":            profileHash,
	"toml":            profileHash,
	"dotenv":          profileHash,
	"make":            profileHash,
	"dockerfile":      profileHash,
	"cmake":           profileHash,
	"elixir":          profileHash,
	"julia":           profileHash,
	"nim":             profileHash,
	"ini":             profileIni,
	"properties":      profileIni,
	"sql":             profileSQL,
	"html":            profileHTML,
	"xml":             profileHTML,
	"vue":             profileHTML,
	"svelte":          profileHTML,
	"css":             profileCSS,
	"scss":            profileCSS,
	"less":            profileCSS,
	"lua":             profileLua,
	"haskell":         profileHaskell,
	"ocaml":           profileHaskell,
	"powershell":      profilePowershell,
	"hcl":             profileHash,
	"terraform":       profileHash,
}

// ProfileFor は正規化済み言語名のプロファイルを返します。
func ProfileFor(name string) (Profile, bool) {
	p, ok := languageProfiles[Normalize(name)]
	return p, ok
}

// Known は言語名にプロファイルが定義されているかを返します。
func Known(name string) bool {
	_, ok := languageProfiles[Normalize(name)]
	return ok
}
