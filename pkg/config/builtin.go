package config

import (
	_ "embed"
	"fmt"
	"sort"
)

// 内置主题随库嵌入，加载不依赖工作目录
//
//go:embed themes.yaml
var builtinThemesYAML []byte

// BuiltinThemes 返回内置主题集合
// 嵌入数据解析失败属于构建错误，直接 panic 暴露
func BuiltinThemes() map[string]Theme {
	themes, err := LoadThemes(builtinThemesYAML)
	if err != nil {
		panic(fmt.Sprintf("内置主题损坏: %v", err))
	}
	return themes
}

// ThemeNames 返回主题名的稳定排序列表（用于界面轮换）
func ThemeNames(themes map[string]Theme) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
