package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// searchConfigDir 从当前源码目录向上查找 config.yaml 所在目录
// 使测试可以在任意包目录下加载仓库根目录的配置
func searchConfigDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
