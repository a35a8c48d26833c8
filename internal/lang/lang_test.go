package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectByExtension(t *testing.T) {
	cases := []struct{ path, want string }{
		{"main.go", "go"},
		{"src/app.py", "python"},
		{"web/ui.tsx", "typescriptreact"},
		{"deploy/main.tf", "terraform"},
		{"a/b/styles.scss", "scss"},
		{"query.SQL", "sql"},
		{"notes.txt", ""},
	}
	for _, tc := range cases {
		if got := Detect(tc.path, nil); got != tc.want {
			t.Errorf("Detect(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDetectByBasename(t *testing.T) {
	cases := []struct{ path, want string }{
		{"Makefile", "make"},
		{"project/Dockerfile", "dockerfile"},
		{"Gemfile", "ruby"},
		{"pyproject.toml", "toml"},
	}
	for _, tc := range cases {
		if got := Detect(tc.path, nil); got != tc.want {
			t.Errorf("Detect(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDetectByShebang(t *testing.T) {
	cases := []struct {
		data string
		want string
	}{
		{"#!/usr/bin/env python3\nprint()\n", "python"},
		{"#!/bin/bash\necho hi\n", "shell"},
		{"#!/usr/bin/env node\n", "javascript"},
		{"plain text\n", ""},
	}
	for _, tc := range cases {
		if got := Detect("script", []byte(tc.data)); got != tc.want {
			t.Errorf("Detect(shebang %q) = %q, want %q", tc.data, got, tc.want)
		}
	}
}

// 拡張子が勝ち、シバンは拡張子がないときだけ見る
func TestDetectExtensionBeatsShebang(t *testing.T) {
	if got := Detect("tool.rb", []byte("#!/usr/bin/env python\n")); got != "ruby" {
		t.Errorf("got %q", got)
	}
}

func TestDetectComposedExtension(t *testing.T) {
	if got := Detect("main.tf.json", nil); got != "terraform" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeAliases(t *testing.T) {
	cases := []struct{ in, want string }{
		{"JS", "javascript"},
		{"ts", "typescript"},
		{"golang", "go"},
		{"c++", "cpp"},
		{"Python", "python"},
		{"unknown-lang", "unknown-lang"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalLangs(t *testing.T) {
	got := CanonicalLangs([]string{"JS", "javascript", "", "py", "PY"})
	want := []string{"javascript", "python"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestProfileForKnownLanguages(t *testing.T) {
	for _, name := range []string{"go", "python", "javascript", "ruby", "shell", "sql", "html", "c", "rust", "yaml"} {
		p, ok := ProfileFor(name)
		if !ok {
			t.Errorf("no profile for %s", name)
			continue
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if !Known("ts") {
		t.Error("alias should resolve to a known profile")
	}
	if Known("klingon") {
		t.Error("unknown language must not be known")
	}
}

func TestAllProfilesValidate(t *testing.T) {
	for name, p := range languageProfiles {
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestValidateRejectsBrokenProfiles(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
	}{
		{"unnamed", Profile{}},
		{"empty line comment", Profile{Name: "x", LineComments: []string{""}}},
		{"quote collides with comment", Profile{
			Name:         "x",
			LineComments: []string{`"--`},
			Quotes:       []QuoteStyle{{Quote: '"'}},
		}},
		{"unpaired interp", Profile{Name: "x", InterpOpen: "{"}},
		{"interp prefix without delims", Profile{Name: "x", InterpPrefixes: []byte{'f'}}},
		{"duplicate quote", Profile{Name: "x", Quotes: []QuoteStyle{{Quote: '\''}, {Quote: '\''}}}},
		{"zero quote", Profile{Name: "x", Quotes: []QuoteStyle{{Quote: 0}}}},
		{"half block delim", Profile{Name: "x", BlockDelims: []BlockDelim{{Open: "/*"}}}},
	}
	for _, tc := range cases {
		err := tc.profile.Validate()
		var se *ScanError
		if !errors.As(err, &se) {
			t.Errorf("%s: err = %v, want ScanError", tc.name, err)
		}
	}
}

func TestPrefixLookupIsCaseInsensitive(t *testing.T) {
	p, _ := ProfileFor("python")
	if !p.HasRawPrefix('R') || !p.HasRawPrefix('r') {
		t.Error("raw prefix should match both cases")
	}
	if !p.HasInterpPrefix('F') {
		t.Error("interp prefix should match both cases")
	}
	if p.HasRawPrefix('x') {
		t.Error("x is not a raw prefix")
	}
}
