package waveview

import (
	"image/color"

	"github.com/decker502/waveview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染合成器
//
// 每帧固定 Z 序：圆形图像 → 边框描边 → 波形（圆形裁剪）→ 文本。
// 波形动画只更新一次绘制变换矩阵 + 平铺绘制，不重生成像素；
// 位图与排版按脏标记缓存，昂贵操作绝不无条件地每帧重做。

// side 圆形区域边长 = min(宽, 高)
func (w *Widget) side() int {
	if w.width < w.height {
		return w.width
	}
	return w.height
}

// ensureBuffers 按"构建参数"比对重建位图缓存
//
// 尺寸变化重建全部；边框变化重建蒙板与源图；颜色变化只重建波形图案。
func (w *Widget) ensureBuffers() {
	s := w.side()
	if s <= 0 {
		return
	}

	if s != w.builtSide {
		w.circleMask = buildCircleMask(s, w.loader.BorderWidth)
		w.scratch = ebiten.NewImage(s, s)
		w.wavePattern = buildWavePattern(s, s, DefaultAmplitudeRatio, w.loader.WaveColor)
		w.cache.markAllDirty()
		w.sourceDirty = true
		w.builtSide = s
		w.builtBorder = w.loader.BorderWidth
		w.builtColor = w.loader.WaveColor
	}

	if w.loader.BorderWidth != w.builtBorder {
		w.circleMask = buildCircleMask(s, w.loader.BorderWidth)
		w.sourceDirty = true
		w.builtBorder = w.loader.BorderWidth
	}

	if w.loader.WaveColor != w.builtColor {
		w.wavePattern = buildWavePattern(s, s, DefaultAmplitudeRatio, w.loader.WaveColor)
		w.builtColor = w.loader.WaveColor
	}

	if w.sourceDirty {
		w.circleImage = buildCircleImage(w.source, s, w.loader.BorderWidth)
		w.sourceDirty = false
	}
}

// ensureLayouts 重建脏的文本排版
// 脏标记只在这里清除；脏时缓存不可读的约定由本方法兜底
func (w *Widget) ensureLayouts() {
	diameter := float64(w.side())

	if w.cache.primaryDirty {
		w.cache.primary = buildPrimaryBlock(&w.text, &w.autoSize, w.loader.Progress, diameter, w.fonts)
		w.cache.primaryDirty = false
	}
	if w.cache.subtitleDirty {
		w.cache.subtitle = buildSubtitleBlock(&w.subtitle, diameter, w.fonts)
		w.cache.subtitleDirty = false
	}
}

// Draw 将控件绘制到 dst 的 (x, y) 处
//
// 合成顺序固定（见包注释）；文本永远最后、永远在最上层。
// 图像管线降级为"无图"时跳过图像与波形，文本照常绘制。
func (w *Widget) Draw(dst *ebiten.Image, x, y float64) {
	w.needsRedraw = false

	s := w.side()
	if dst == nil || s <= 0 {
		return
	}

	w.ensureBuffers()
	w.ensureLayouts()

	// 圆形区域在控件内居中
	ox := x + (float64(w.width)-float64(s))/2
	oy := y + (float64(w.height)-float64(s))/2

	if w.circleImage != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox, oy)
		dst.DrawImage(w.circleImage, op)

		if w.loader.BorderWidth > 0 {
			cx := ox + float64(s)/2
			cy := oy + float64(s)/2
			r := float64(s)/2 - w.loader.BorderWidth/2
			vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r),
				float32(w.loader.BorderWidth), w.loader.WaveColor, true)
		}

		if w.wavePattern != nil && w.scratch != nil && w.circleMask != nil {
			w.drawWave(dst, ox, oy)
		}
	}

	w.drawTextOverlay(dst, x+float64(w.width)/2, y+float64(w.height)/2)
}

// drawWave 绘制波形填充（圆形裁剪）
//
// 变换 = 以基准水位为锚点的纵向缩放 (1, 振幅比例/默认振幅比例)，
// 再平移 (相位 × 宽度, (水位比例 - 0.5) × 高度)。图案横向平铺两份
// 覆盖整个相位区间；缩放后图案底边之下补满波色（纵向 clamp 语义）。
func (w *Widget) drawWave(dst *ebiten.Image, ox, oy float64) {
	s := float64(w.builtSide)
	w.scratch.Clear()

	ampScale := w.loader.AmplitudeRatio / DefaultAmplitudeRatio
	baseline := s * DefaultWaterLevelRatio
	dy := (w.loader.WaterLevelRatio - DefaultWaterLevelRatio) * s
	dx := -w.loader.WaveShiftRatio * s

	for k := 0; k <= 1; k++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, -baseline)
		op.GeoM.Scale(1, ampScale)
		op.GeoM.Translate(0, baseline)
		op.GeoM.Translate(dx+float64(k)*s, dy)
		w.scratch.DrawImage(w.wavePattern, op)
	}

	// 图案底边之下是水体内部，补满不透明波色
	bottom := w.loader.WaterLevelRatio*s + ampScale*s/2
	if bottom < s {
		fill := w.loader.WaveColor
		fill.A = 0xff
		vector.DrawFilledRect(w.scratch, 0, float32(bottom), float32(s), float32(s-bottom), fill, false)
	}

	maskOp := &ebiten.DrawImageOptions{}
	maskOp.Blend = ebiten.BlendDestinationIn
	w.scratch.DrawImage(w.circleMask, maskOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	dst.DrawImage(w.scratch, op)
}

// drawTextOverlay 绘制文本块（主文本 + 副标题），垂直居中于圆心
//
// 整块按 (OffsetX, OffsetY) 平移；副标题紧跟主文本，再加自身间距。
// 无可显示文本时为空操作。
func (w *Widget) drawTextOverlay(dst *ebiten.Image, cx, cy float64) {
	primary := w.cache.primary
	subtitle := w.cache.subtitle
	if primary == nil && subtitle == nil {
		return
	}

	blockHeight := 0.0
	if primary != nil {
		blockHeight += primary.height
	}
	if subtitle != nil {
		if primary != nil {
			blockHeight += w.subtitle.OffsetY
		}
		blockHeight += subtitle.height
	}

	x := cx + w.text.OffsetX
	y := cy - blockHeight/2 + w.text.OffsetY

	if primary != nil {
		if w.text.ShadowEnabled {
			w.drawBlock(dst, primary, x+w.text.Shadow.DX, y+w.text.Shadow.DY, w.text.Shadow.Color)
		}
		w.drawBlock(dst, primary, x, y, w.text.Color)
		y += primary.height + w.subtitle.OffsetY
	}

	if subtitle != nil {
		w.drawBlock(dst, subtitle, x, y, w.subtitle.Color)
	}
}

// drawBlock 绘制一段已编译排版，逐行水平居中
func (w *Widget) drawBlock(dst *ebiten.Image, b *textBlock, centerX, topY float64, clr color.RGBA) {
	for i, line := range b.lines {
		lineY := topY + float64(i)*b.lineHeight
		drawCenteredLine(dst, line, b.face, b.letterSpacing, centerX, lineY, clr)
	}
}

// drawCenteredLine 绘制单行居中文本
// 字距为零时走 text.Draw 的居中对齐；非零时逐字符推进
func drawCenteredLine(dst *ebiten.Image, line string, face *text.GoTextFace,
	letterSpacing, centerX, topY float64, clr color.RGBA) {

	if line == "" || face == nil {
		return
	}

	if letterSpacing == 0 {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(centerX, topY)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, line, face, op)
		return
	}

	width := utils.MeasureTextWidth(line, face, letterSpacing)
	x := centerX - width/2
	for _, r := range line {
		ch := string(r)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, topY)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, ch, face, op)
		x += text.Advance(ch, face) + letterSpacing
	}
}
