package opts

import (
	"net/url"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	def := Defaults("/repo")
	if def.RootDir != "/repo" {
		t.Errorf("RootDir = %q", def.RootDir)
	}
	if def.Jobs < 1 || def.Jobs > maxJobs {
		t.Errorf("Jobs = %d", def.Jobs)
	}
	if def.IncludeComments || def.IncludeDocstrings || def.Dedupe {
		t.Errorf("boolean defaults should be off: %+v", def)
	}
}

func TestApplyWebQueryToOptions(t *testing.T) {
	def := Defaults(".")
	q := url.Values{
		"include_comments":   {"1"},
		"include_docstrings": {"true"},
		"dedupe":             {"on"},
		"jobs":               {"3"},
		"max_file_bytes":     {"1024"},
		"lang":               {"go,python"},
		"scheme":             {"https", "ftp"},
		"path":               {"src/**"},
		"exclude":            {"vendor/**,dist/**"},
		"root":               {"/elsewhere"},
	}
	got, err := ApplyWebQueryToOptions(def, q)
	if err != nil {
		t.Fatalf("ApplyWebQueryToOptions: %v", err)
	}
	if !got.IncludeComments || !got.IncludeDocstrings || !got.Dedupe {
		t.Errorf("bool params not applied: %+v", got)
	}
	if got.Jobs != 3 || got.MaxFileBytes != 1024 {
		t.Errorf("int params not applied: %+v", got)
	}
	if !reflect.DeepEqual(got.Langs, []string{"go", "python"}) {
		t.Errorf("Langs = %v", got.Langs)
	}
	if !reflect.DeepEqual(got.Schemes, []string{"https", "ftp"}) {
		t.Errorf("Schemes = %v", got.Schemes)
	}
	if !reflect.DeepEqual(got.Excludes, []string{"vendor/**", "dist/**"}) {
		t.Errorf("Excludes = %v", got.Excludes)
	}
	if got.RootDir != "/elsewhere" {
		t.Errorf("RootDir = %q", got.RootDir)
	}
}

// 同じキーが繰り返されたら最後の値が勝つ
func TestApplyWebQueryLastValueWins(t *testing.T) {
	def := Defaults(".")
	got, err := ApplyWebQueryToOptions(def, url.Values{"jobs": {"2", "5"}})
	if err != nil {
		t.Fatal(err)
	}
	if got.Jobs != 5 {
		t.Errorf("Jobs = %d, want 5", got.Jobs)
	}
}

func TestApplyWebQueryRejectsBadValues(t *testing.T) {
	def := Defaults(".")
	for _, q := range []url.Values{
		{"include_comments": {"perhaps"}},
		{"jobs": {"0"}},
		{"jobs": {"100"}},
		{"jobs": {"many"}},
		{"max_file_bytes": {"big"}},
	} {
		if _, err := ApplyWebQueryToOptions(def, q); err == nil {
			t.Errorf("query %v should fail", q)
		}
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := Defaults("")
	o.Schemes = []string{" HTTPS ", "ftp", ""}
	o.Langs = []string{"JS", "py"}
	o.Paths = []string{" src ", ""}
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("NormalizeAndValidate: %v", err)
	}
	if o.RootDir != "." {
		t.Errorf("RootDir = %q", o.RootDir)
	}
	if !reflect.DeepEqual(o.Schemes, []string{"https", "ftp"}) {
		t.Errorf("Schemes = %v", o.Schemes)
	}
	if !reflect.DeepEqual(o.Langs, []string{"javascript", "python"}) {
		t.Errorf("Langs = %v", o.Langs)
	}
	if !reflect.DeepEqual(o.Paths, []string{"src"}) {
		t.Errorf("Paths = %v", o.Paths)
	}
}

func TestNormalizeSchemesAny(t *testing.T) {
	o := Defaults(".")
	o.Schemes = []string{"https", "any"}
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatal(err)
	}
	if o.Schemes != nil {
		t.Errorf("Schemes = %v, want nil", o.Schemes)
	}
}

func TestNormalizeAndValidateUnknownLang(t *testing.T) {
	o := Defaults(".")
	o.Langs = []string{"klingon"}
	if err := NormalizeAndValidate(&o); err == nil {
		t.Fatal("unknown language should fail validation")
	}
}

func TestNormalizeAndValidateJobsRange(t *testing.T) {
	o := Defaults(".")
	o.Jobs = 0
	if err := NormalizeAndValidate(&o); err == nil {
		t.Fatal("jobs=0 should fail")
	}
	o.Jobs = maxJobs + 1
	if err := NormalizeAndValidate(&o); err == nil {
		t.Fatal("jobs above the cap should fail")
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "On"} {
		got, err := ParseBool(v, "k")
		if err != nil || !got {
			t.Errorf("ParseBool(%q) = %v, %v", v, got, err)
		}
	}
	for _, v := range []string{"0", "false", "no", "OFF"} {
		got, err := ParseBool(v, "k")
		if err != nil || got {
			t.Errorf("ParseBool(%q) = %v, %v", v, got, err)
		}
	}
	if _, err := ParseBool("definitely", "k"); err == nil {
		t.Error("invalid literal should fail")
	}
}

func TestNormalizeOutput(t *testing.T) {
	cases := []struct{ in, want string }{
		{"table", "table"},
		{"TSV", "tsv"},
		{"markdown", "md"},
		{"md", "md"},
		{"ndjson", "ndjson"},
	}
	for _, tc := range cases {
		got, err := NormalizeOutput(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("NormalizeOutput(%q) = %q, %v", tc.in, got, err)
		}
	}
	if _, err := NormalizeOutput("xml"); err == nil {
		t.Error("unsupported format should fail")
	}
}

func TestSplitMulti(t *testing.T) {
	got := SplitMulti([]string{"a,b", " c ", "", ",d,"})
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
