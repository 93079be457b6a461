package waveview

import (
	"fmt"

	"github.com/decker502/waveview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 文本排版引擎
//
// 排版结果（textBlock）按脏标记缓存：任何影响排版的属性变更、
// 尺寸变化都会置脏；只有渲染过程中的重建会清除脏标记。
// 脏标记为真时禁止读取缓存（参见 Widget.ensureLayouts）。

// textBlock 一段居中多行文本的已编译排版
type textBlock struct {
	lines         []string
	face          *text.GoTextFace
	size          float64 // 有效字号（自动字号生效后的值）
	lineHeight    float64
	width         float64 // 排版宽度
	height        float64 // 整块高度
	letterSpacing float64
}

// layoutCache 主文本与副标题的排版缓存
//
// 不变量：脏标记为 true 时对应排版不可读，必须先重建。
type layoutCache struct {
	primary       *textBlock
	subtitle      *textBlock
	primaryDirty  bool
	subtitleDirty bool
}

// markAllDirty 全部置脏（尺寸变化、回收后重新绑定时）
func (c *layoutCache) markAllDirty() {
	c.primaryDirty = true
	c.subtitleDirty = true
}

// resolveDisplayText 解析主文本的显示内容
//
// 优先级：显式文本 > 进度文本（启用时按格式串格式化已提交进度）> 无。
// 返回 nil 表示无可显示文本，排版与绘制整体跳过。
func resolveDisplayText(ts *TextState, progress int) *string {
	if ts.Text != nil {
		return ts.Text
	}
	if ts.ShowProgressText {
		s := fmt.Sprintf(ts.ProgressTextFormat, progress)
		return &s
	}
	return nil
}

// autoSizeSearch 二分查找能放进圆内的最大字号
//
// 在 [minSize, maxSize] 内查找满足"单行实测宽度 ≤ maxWidth"的最大
// 字号；区间收窄到 ≤1 时终止并向下取整（贴边时宁可偏小保证放得下）。
// maxSize 本身已放得下则直接返回 maxSize。结果不会低于 minSize，
// 即便 minSize 仍然超宽（下限优先于适配）。
func autoSizeSearch(str string, reg *FontRegistry, family string, style FontStyle,
	letterSpacing, minSize, maxSize, maxWidth float64) float64 {

	if minSize >= maxSize {
		return maxSize
	}

	measure := func(size float64) float64 {
		face := reg.Face(family, style, size)
		if face == nil {
			return 0
		}
		return utils.MeasureTextWidth(str, face, letterSpacing)
	}

	if measure(maxSize) <= maxWidth {
		return maxSize
	}

	lo, hi := minSize, maxSize
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if measure(mid) <= maxWidth {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// buildPrimaryBlock 重建主文本排版
//
// 自动字号在排版前运行，只改本次排版的有效字号，不回写配置。
// 返回 nil 表示无可显示文本。
func buildPrimaryBlock(ts *TextState, auto *AutoSizeState, progress int,
	diameter float64, reg *FontRegistry) *textBlock {

	display := resolveDisplayText(ts, progress)
	if display == nil || *display == "" || diameter <= 0 {
		return nil
	}

	maxWidth := diameter * maxTextWidthRatio

	size := ts.Size
	if auto.Enabled {
		size = autoSizeSearch(*display, reg, ts.FontFamily, ts.Style,
			ts.LetterSpacing, auto.MinSize, ts.Size, maxWidth)
	}

	face := reg.Face(ts.FontFamily, ts.Style, size)
	if face == nil {
		return nil
	}

	// match 模式固定用最大宽度；wrap 模式取实测与最大宽度的较小值
	layoutWidth := maxWidth
	if ts.WidthMode != WidthModeMatch {
		measured := utils.MeasureTextWidth(*display, face, ts.LetterSpacing)
		if measured < layoutWidth {
			layoutWidth = measured
		}
	}

	lines := utils.WrapText(*display, face, ts.LetterSpacing, layoutWidth)
	lineHeight := utils.LineHeight(face)

	return &textBlock{
		lines:         lines,
		face:          face,
		size:          size,
		lineHeight:    lineHeight,
		width:         layoutWidth,
		height:        lineHeight * float64(len(lines)),
		letterSpacing: ts.LetterSpacing,
	}
}

// buildSubtitleBlock 重建副标题排版
// 返回 nil 表示无副标题
func buildSubtitleBlock(ss *SubtitleState, diameter float64, reg *FontRegistry) *textBlock {
	if ss.Text == nil || *ss.Text == "" || diameter <= 0 {
		return nil
	}

	face := reg.Face(ss.FontFamily, ss.Style, ss.Size)
	if face == nil {
		return nil
	}

	maxWidth := diameter * maxTextWidthRatio
	layoutWidth := maxWidth
	if measured := utils.MeasureTextWidth(*ss.Text, face, 0); measured < layoutWidth {
		layoutWidth = measured
	}

	lines := utils.WrapText(*ss.Text, face, 0, layoutWidth)
	lineHeight := utils.LineHeight(face)

	return &textBlock{
		lines:      lines,
		face:       face,
		size:       ss.Size,
		lineHeight: lineHeight,
		width:      layoutWidth,
		height:     lineHeight * float64(len(lines)),
	}
}
