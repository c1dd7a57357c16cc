package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename はアップロードされたファイル名を保存に安全な形式へ変換します。
// パス区切りを取り除き、英数字と . - _ 以外の文字を除去します。
func SanitizeFilename(name string) string {
	// Windowsスタイルの区切りも正規化してからベース名を取る
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		return "upload"
	}
	return sanitized
}
