package waveview

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 波形图案生成
//
// 两层正弦波渲染进一张离屏位图，作为圆形区域的平铺填充图案。
// 图案只在尺寸或波形颜色变化时重建；动画帧只调整绘制变换矩阵，
// 不触碰像素（参见 render.go）。

// wavePatternColumns 计算每一列的波面高度
//
// angularFrequency = 2π / (波长比例 × 宽度)，波长比例固定为 1.0。
// 返回长度为 width 的切片：y[x] = 基准水位 + 振幅 × sin(x × ω)。
func wavePatternColumns(width, height int, amplitudeRatio float64) []float64 {
	if width <= 0 || height <= 0 {
		return nil
	}

	angularFrequency := 2 * math.Pi / float64(width)
	amplitude := float64(height) * amplitudeRatio
	waterLevel := float64(height) * DefaultWaterLevelRatio

	ys := make([]float64, width)
	for x := 0; x < width; x++ {
		ys[x] = waterLevel + amplitude*math.Sin(float64(x)*angularFrequency)
	}
	return ys
}

// buildWavePattern 生成波形填充图案
//
// 每列从波面画到底部，分两层：
//  1. 后层：原始波面，30% 透明度
//  2. 前层：同一波面横移 1/4 波长，全不透明
//
// 图案横向可平铺（首尾相位连续），纵向由绘制阶段补底（clamp 语义）。
// 尺寸非法时返回 nil，渲染端按"无波形"降级。
func buildWavePattern(width, height int, amplitudeRatio float64, waveColor color.RGBA) *ebiten.Image {
	ys := wavePatternColumns(width, height, amplitudeRatio)
	if ys == nil {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// 预乘 Alpha 的后层颜色（30%）
	const backAlpha = 0.3
	backR := uint8(float64(waveColor.R) * backAlpha)
	backG := uint8(float64(waveColor.G) * backAlpha)
	backB := uint8(float64(waveColor.B) * backAlpha)
	backA := uint8(float64(waveColor.A) * backAlpha)

	quarter := width / 4

	for x := 0; x < width; x++ {
		backY := int(math.Round(ys[x]))
		frontY := int(math.Round(ys[(x+quarter)%width]))

		for y := 0; y < height; y++ {
			i := img.PixOffset(x, y)
			switch {
			case y >= frontY:
				// 前层不透明，直接覆盖
				img.Pix[i+0] = waveColor.R
				img.Pix[i+1] = waveColor.G
				img.Pix[i+2] = waveColor.B
				img.Pix[i+3] = waveColor.A
			case y >= backY:
				img.Pix[i+0] = backR
				img.Pix[i+1] = backG
				img.Pix[i+2] = backB
				img.Pix[i+3] = backA
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}
