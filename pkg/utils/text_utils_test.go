package utils

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// newTestFace 构建测试字体（Go Regular）
func newTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("字体解析失败: %v", err)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// TestMeasureTextWidth 测试文本宽度测量
func TestMeasureTextWidth(t *testing.T) {
	face := newTestFace(t, 20)

	t.Run("空文本宽度为零", func(t *testing.T) {
		if w := MeasureTextWidth("", face, 0); w != 0 {
			t.Errorf("空文本宽度 = %v, 期望 0", w)
		}
	})

	t.Run("nil字体宽度为零", func(t *testing.T) {
		if w := MeasureTextWidth("abc", nil, 0); w != 0 {
			t.Errorf("nil 字体宽度 = %v, 期望 0", w)
		}
	})

	t.Run("长文本更宽", func(t *testing.T) {
		short := MeasureTextWidth("ab", face, 0)
		long := MeasureTextWidth("abcdef", face, 0)
		if long <= short {
			t.Errorf("长文本宽度 %v 应大于短文本宽度 %v", long, short)
		}
	})

	t.Run("字距按间隙数累加", func(t *testing.T) {
		base := MeasureTextWidth("abcd", face, 0)
		spaced := MeasureTextWidth("abcd", face, 3)
		// 4 个字符 = 3 个间隙
		expected := base + 9
		if diff := spaced - expected; diff > 0.001 || diff < -0.001 {
			t.Errorf("带字距宽度 = %v, 期望 %v", spaced, expected)
		}
	})

	t.Run("单字符不加字距", func(t *testing.T) {
		base := MeasureTextWidth("a", face, 0)
		spaced := MeasureTextWidth("a", face, 5)
		if base != spaced {
			t.Errorf("单字符宽度不应受字距影响: %v != %v", base, spaced)
		}
	})
}

// TestWrapText 测试自动换行
func TestWrapText(t *testing.T) {
	face := newTestFace(t, 20)

	t.Run("放得下不换行", func(t *testing.T) {
		lines := WrapText("hi", face, 0, 1000)
		if len(lines) != 1 || lines[0] != "hi" {
			t.Errorf("WrapText = %v, 期望单行原文", lines)
		}
	})

	t.Run("超宽文本换行", func(t *testing.T) {
		str := "hello world hello world"
		maxWidth := MeasureTextWidth(str, face, 0) / 2
		lines := WrapText(str, face, 0, maxWidth)
		if len(lines) < 2 {
			t.Fatalf("应至少换成两行, 实际 %d 行: %v", len(lines), lines)
		}
		for i, line := range lines {
			if w := MeasureTextWidth(line, face, 0); w > maxWidth {
				t.Errorf("第 %d 行宽度 %v 超过上限 %v", i, w, maxWidth)
			}
		}
	})

	t.Run("中英文混排", func(t *testing.T) {
		str := "下载进度 progress 下载进度"
		maxWidth := MeasureTextWidth(str, face, 0) / 3
		lines := WrapText(str, face, 0, maxWidth)
		if len(lines) < 2 {
			t.Errorf("混排文本应换行, 实际 %v", lines)
		}
		// 换行不丢字符（忽略修剪的空格）
		total := 0
		for _, line := range lines {
			total += len([]rune(line))
		}
		if total < len([]rune(str))-10 {
			t.Errorf("换行后字符明显丢失: %d -> %d", len([]rune(str)), total)
		}
	})

	t.Run("单字符超宽强制成行", func(t *testing.T) {
		lines := WrapText("世界", face, 0, 1)
		if len(lines) != 2 {
			t.Errorf("每个字符应强制占一行, 实际 %v", lines)
		}
	})

	t.Run("空文本原样返回", func(t *testing.T) {
		lines := WrapText("", face, 0, 100)
		if len(lines) != 1 || lines[0] != "" {
			t.Errorf("WrapText(\"\") = %v", lines)
		}
	})
}

// TestLineHeight 测试行高计算
func TestLineHeight(t *testing.T) {
	t.Run("nil字体行高为零", func(t *testing.T) {
		if h := LineHeight(nil); h != 0 {
			t.Errorf("LineHeight(nil) = %v, 期望 0", h)
		}
	})

	t.Run("字号越大行高越大", func(t *testing.T) {
		small := LineHeight(newTestFace(t, 12))
		large := LineHeight(newTestFace(t, 48))
		if large <= small {
			t.Errorf("48px 行高 %v 应大于 12px 行高 %v", large, small)
		}
	})
}
