package engine

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// typicalExcludes は --exclude-typical で飛ばす定番の生成物ディレクトリ。
var typicalExcludes = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"target":       {},
	".venv":        {},
	"__pycache__":  {},
	".cache":       {},
}

// listFiles はルート以下を歩き、対象ファイルの相対パス（スラッシュ区切り）を
// ソート済みで返します。.git は常に飛ばします。
func listFiles(root string, includes, excludes []string, typical bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			base := d.Name()
			if base == ".git" {
				return filepath.SkipDir
			}
			if typical {
				if _, ok := typicalExcludes[base]; ok {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !includePath(rel, includes) {
			return nil
		}
		if excludePath(rel, excludes) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// includePath は includes が空なら常に true、指定時はいずれかの
// パターンに一致するか、指定ディレクトリ配下にあるときだけ true。
func includePath(rel string, includes []string) bool {
	if len(includes) == 0 {
		return true
	}
	for _, inc := range includes {
		inc = strings.TrimSuffix(filepath.ToSlash(inc), "/")
		if inc == "" || inc == "." {
			return true
		}
		if rel == inc || strings.HasPrefix(rel, inc+"/") {
			return true
		}
		if ok, err := doublestar.Match(inc, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func excludePath(rel string, excludes []string) bool {
	for _, pat := range excludes {
		pat = filepath.ToSlash(pat)
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
		// bare directory names exclude the whole subtree
		if rel == pat || strings.HasPrefix(rel, strings.TrimSuffix(pat, "/")+"/") {
			return true
		}
	}
	return false
}
