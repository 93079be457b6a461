package waveview

import (
	"image"
	"log"

	"github.com/decker502/waveview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 图像管线
//
// 源图 → 居中正方形裁剪 → 缩放到 S×S → 圆形蒙板。
// 只在图源变化或尺寸变化时重算；失败一律降级为"无图"，
// 渲染端跳过图像与波形绘制，绝不让一帧崩溃。

// buildCircleImage 构建圆形裁剪后的源图位图
//
// 无源图时合成 S×S 的全透明位图（控件仍显示波形与文本）。
// side 非法或蒙板半径非正时返回 nil（"无图"降级）。
func buildCircleImage(src image.Image, side int, borderWidth float64) *ebiten.Image {
	if side <= 0 {
		return nil
	}

	radius := float64(side)/2 - borderWidth
	if radius <= 0 {
		log.Printf("[WaveView] 边框宽度 %.1f 占满半径，按无图降级", borderWidth)
		return nil
	}

	if src == nil {
		// 空白占位，保持合成顺序不变
		return ebiten.NewImage(side, side)
	}

	cropped := utils.CropCenterSquare(src)
	if cropped == nil {
		return ebiten.NewImage(side, side)
	}

	scaled := utils.ScaleSquare(cropped, side)
	if scaled == nil {
		return ebiten.NewImage(side, side)
	}

	utils.ApplyCircleMask(scaled, radius)
	return ebiten.NewImageFromImage(scaled)
}

// buildCircleMask 构建 S×S 的圆形 Alpha 蒙板
//
// 白色不透明圆盘，配合 BlendDestinationIn 对波形缓冲做圆形裁剪。
func buildCircleMask(side int, borderWidth float64) *ebiten.Image {
	if side <= 0 {
		return nil
	}

	radius := float64(side)/2 - borderWidth
	if radius <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	utils.ApplyCircleMask(img, radius)
	return ebiten.NewImageFromImage(img)
}
