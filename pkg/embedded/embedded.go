// Package embedded 提供内置资源的统一访问接口
//
// 内置关卡文件位于本包的 data/ 目录下，随二进制一起分发。
// 路径统一使用 "data/" 前缀，例如 "data/levels/level_1.json"。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed data
var dataFS embed.FS

// LevelDir 内置关卡目录
const LevelDir = "data/levels"

// LevelPath 返回第 n 关的内置关卡路径
func LevelPath(n int) string {
	return fmt.Sprintf("%s/level_%d.json", LevelDir, n)
}

// normalize 标准化路径并检查前缀
func normalize(path string) (string, error) {
	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") && path != "data" {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取内置文件内容
func ReadFile(path string) ([]byte, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}
