package waveview

import (
	"testing"

	"github.com/decker502/waveview/pkg/utils"
)

func strPtr(s string) *string { return &s }

// TestResolveDisplayText 测试显示文本解析优先级
func TestResolveDisplayText(t *testing.T) {
	tests := []struct {
		name     string
		state    TextState
		progress int
		expected *string
	}{
		{
			"显式文本优先",
			TextState{Text: strPtr("下载中"), ShowProgressText: true, ProgressTextFormat: "%d%%"},
			42,
			strPtr("下载中"),
		},
		{
			"进度文本按格式串",
			TextState{ShowProgressText: true, ProgressTextFormat: "%d%%"},
			80,
			strPtr("80%"),
		},
		{
			"自定义格式串",
			TextState{ShowProgressText: true, ProgressTextFormat: "已完成 %d"},
			7,
			strPtr("已完成 7"),
		},
		{
			"两者皆无返回nil",
			TextState{},
			50,
			nil,
		},
		{
			"进度文本关闭返回nil",
			TextState{ShowProgressText: false, ProgressTextFormat: "%d%%"},
			50,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := resolveDisplayText(&tt.state, tt.progress)
			switch {
			case tt.expected == nil && result != nil:
				t.Errorf("期望 nil, 实际 %q", *result)
			case tt.expected != nil && result == nil:
				t.Errorf("期望 %q, 实际 nil", *tt.expected)
			case tt.expected != nil && *result != *tt.expected:
				t.Errorf("期望 %q, 实际 %q", *tt.expected, *result)
			}
		})
	}
}

// TestAutoSizeSearch 测试自动字号二分查找
func TestAutoSizeSearch(t *testing.T) {
	reg := DefaultFonts()

	t.Run("放得下保持原字号", func(t *testing.T) {
		size := autoSizeSearch("Hi", reg, DefaultFontFamily, FontStyleNormal, 0, 8, 24, 10000)
		if size != 24 {
			t.Errorf("字号 = %v, 期望 24", size)
		}
	})

	t.Run("超宽文本缩小字号", func(t *testing.T) {
		str := "a very long progress label that will not fit"
		face := reg.Face(DefaultFontFamily, FontStyleNormal, 48)
		maxWidth := utils.MeasureTextWidth(str, face, 0) / 3

		size := autoSizeSearch(str, reg, DefaultFontFamily, FontStyleNormal, 0, 8, 48, maxWidth)
		if size >= 48 {
			t.Fatalf("字号 = %v, 应小于 48", size)
		}
		if size < 8 {
			t.Fatalf("字号 = %v, 不应低于下限 8", size)
		}
		// 结果字号必须放得下
		fitted := reg.Face(DefaultFontFamily, FontStyleNormal, size)
		if w := utils.MeasureTextWidth(str, fitted, 0); w > maxWidth {
			t.Errorf("字号 %v 下宽度 %v 仍超过上限 %v", size, w, maxWidth)
		}
	})

	t.Run("下限优先于适配", func(t *testing.T) {
		size := autoSizeSearch("wwwwwwwwwwwwwwww", reg, DefaultFontFamily, FontStyleNormal, 0, 12, 48, 1)
		if size < 12 {
			t.Errorf("字号 = %v, 不应低于下限 12", size)
		}
	})

	t.Run("下限高于上限时取上限", func(t *testing.T) {
		size := autoSizeSearch("x", reg, DefaultFontFamily, FontStyleNormal, 0, 30, 20, 100)
		if size != 20 {
			t.Errorf("字号 = %v, 期望 20", size)
		}
	})

	t.Run("结果幂等", func(t *testing.T) {
		str := "progress label"
		first := autoSizeSearch(str, reg, DefaultFontFamily, FontStyleNormal, 0, 8, 40, 60)
		second := autoSizeSearch(str, reg, DefaultFontFamily, FontStyleNormal, 0, 8, 40, 60)
		if first != second {
			t.Errorf("两次查找结果不同: %v != %v", first, second)
		}
	})
}

// TestBuildPrimaryBlock 测试主文本排版重建
func TestBuildPrimaryBlock(t *testing.T) {
	reg := DefaultFonts()

	t.Run("无文本返回nil", func(t *testing.T) {
		ts := TextState{Size: 24, Style: FontStyleNormal, WidthMode: WidthModeWrap}
		if block := buildPrimaryBlock(&ts, &AutoSizeState{}, 50, 200, reg); block != nil {
			t.Errorf("无文本应返回 nil, 实际 %+v", block)
		}
	})

	t.Run("零直径返回nil", func(t *testing.T) {
		ts := TextState{Text: strPtr("hi"), Size: 24, Style: FontStyleNormal, WidthMode: WidthModeWrap}
		if block := buildPrimaryBlock(&ts, &AutoSizeState{}, 50, 0, reg); block != nil {
			t.Errorf("零直径应返回 nil, 实际 %+v", block)
		}
	})

	t.Run("wrap模式宽度不超过实测", func(t *testing.T) {
		ts := TextState{Text: strPtr("ok"), Size: 20, Style: FontStyleNormal, WidthMode: WidthModeWrap}
		block := buildPrimaryBlock(&ts, &AutoSizeState{}, 0, 400, reg)
		if block == nil {
			t.Fatal("排版失败")
		}
		face := reg.Face(DefaultFontFamily, FontStyleNormal, 20)
		measured := utils.MeasureTextWidth("ok", face, 0)
		if block.width > measured+0.001 {
			t.Errorf("wrap 模式宽度 = %v, 不应超过实测 %v", block.width, measured)
		}
	})

	t.Run("match模式固定为最大宽度", func(t *testing.T) {
		ts := TextState{Text: strPtr("ok"), Size: 20, Style: FontStyleNormal, WidthMode: WidthModeMatch}
		block := buildPrimaryBlock(&ts, &AutoSizeState{}, 0, 400, reg)
		if block == nil {
			t.Fatal("排版失败")
		}
		expected := 400 * maxTextWidthRatio
		if block.width != expected {
			t.Errorf("match 模式宽度 = %v, 期望 %v", block.width, expected)
		}
	})

	t.Run("长文本wrap成多行", func(t *testing.T) {
		ts := TextState{
			Text:      strPtr("a fairly long label that needs wrapping inside a small circle"),
			Size:      20,
			Style:     FontStyleNormal,
			WidthMode: WidthModeWrap,
		}
		block := buildPrimaryBlock(&ts, &AutoSizeState{}, 0, 200, reg)
		if block == nil {
			t.Fatal("排版失败")
		}
		if len(block.lines) < 2 {
			t.Errorf("长文本应换行, 实际 %v", block.lines)
		}
		if block.height != block.lineHeight*float64(len(block.lines)) {
			t.Errorf("块高 %v != 行高 %v × 行数 %d", block.height, block.lineHeight, len(block.lines))
		}
	})

	t.Run("自动字号生效且不回写配置", func(t *testing.T) {
		ts := TextState{
			Text:      strPtr("a very long single line progress label"),
			Size:      48,
			Style:     FontStyleNormal,
			WidthMode: WidthModeWrap,
		}
		auto := AutoSizeState{Enabled: true, MinSize: 8}
		block := buildPrimaryBlock(&ts, &auto, 0, 150, reg)
		if block == nil {
			t.Fatal("排版失败")
		}
		if block.size >= 48 {
			t.Errorf("有效字号 = %v, 应被自动字号缩小", block.size)
		}
		if ts.Size != 48 {
			t.Errorf("配置字号被回写: %v", ts.Size)
		}
	})
}

// TestBuildSubtitleBlock 测试副标题排版重建
func TestBuildSubtitleBlock(t *testing.T) {
	reg := DefaultFonts()

	t.Run("无副标题返回nil", func(t *testing.T) {
		ss := SubtitleState{Size: 14, Style: FontStyleNormal}
		if block := buildSubtitleBlock(&ss, 200, reg); block != nil {
			t.Errorf("无副标题应返回 nil, 实际 %+v", block)
		}
	})

	t.Run("副标题独立于主文本排版", func(t *testing.T) {
		ss := SubtitleState{Text: strPtr("请稍候"), Size: 14, Style: FontStyleNormal}
		block := buildSubtitleBlock(&ss, 200, reg)
		if block == nil {
			t.Fatal("排版失败")
		}
		if len(block.lines) == 0 || block.lines[0] != "请稍候" {
			t.Errorf("副标题行 = %v", block.lines)
		}
		if block.size != 14 {
			t.Errorf("副标题字号 = %v, 期望 14", block.size)
		}
	})
}

// TestLayoutCacheDirty 测试排版缓存脏标记
func TestLayoutCacheDirty(t *testing.T) {
	t.Run("markAllDirty全部置脏", func(t *testing.T) {
		c := layoutCache{}
		c.markAllDirty()
		if !c.primaryDirty || !c.subtitleDirty {
			t.Errorf("置脏不完整: primary=%v subtitle=%v", c.primaryDirty, c.subtitleDirty)
		}
	})
}
