package config

import (
	"os"
	"path/filepath"
)

var projectFileNames = []string{
	".urlx.yaml",
	".urlx.yml",
	".urlx.toml",
	".urlx.json",
}

var userFileNames = []string{
	"config.yaml",
	"config.yml",
	"config.toml",
	"config.json",
}

// Find は読み込むべき設定ファイルのパスを探します。
// プロジェクト直下の .urlx.* を優先し、なければ XDG のユーザー設定を見ます。
// 見つからなければ空文字列を返します（エラーではありません）。
func Find(rootDir string) string {
	if rootDir != "" {
		for _, name := range projectFileNames {
			p := filepath.Join(rootDir, name)
			if isRegular(p) {
				return p
			}
		}
	}
	if dir := userConfigDir(); dir != "" {
		for _, name := range userFileNames {
			p := filepath.Join(dir, "urlx", name)
			if isRegular(p) {
				return p
			}
		}
	}
	return ""
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
