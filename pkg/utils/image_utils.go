package utils

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// CropCenterSquare 将源图裁剪为居中的正方形
//
// 边长取 min(宽, 高)。源图为 nil 时返回 nil（优雅降级）。
// 返回的是一个新的 RGBA 图像，不共享源图像素。
func CropCenterSquare(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}

	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	side := w
	if h < side {
		side = h
	}

	// 居中裁剪区域
	x0 := bounds.Min.X + (w-side)/2
	y0 := bounds.Min.Y + (h-side)/2
	cropRect := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.Draw(dst, dst.Bounds(), src, cropRect.Min, xdraw.Src)
	return dst
}

// ScaleSquare 将正方形图像缩放到指定边长
//
// 使用双线性插值（golang.org/x/image/draw），边长非法时返回 nil。
// 缩放是初始化期操作，不应出现在每帧路径上。
func ScaleSquare(src image.Image, side int) *image.RGBA {
	if src == nil || side <= 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// ApplyCircleMask 对正方形图像应用圆形 Alpha 蒙板（就地修改）
//
// 圆心为图像中心，半径由调用方指定。圆外像素 Alpha 置 0，
// 边缘一像素按覆盖率渐变，避免硬锯齿。
//
// 逐像素操作，只在尺寸或图源变化时调用，不要出现在每帧路径上。
func ApplyCircleMask(img *image.RGBA, radius float64) {
	if img == nil || radius <= 0 {
		return
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	cx := float64(w) / 2
	cy := float64(h) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := dx*dx + dy*dy

			// 覆盖率：圆内 1，圆外 0，边缘一像素线性过渡
			coverage := radius + 0.5 - math.Sqrt(dist)
			if coverage >= 1 {
				continue
			}
			if coverage < 0 {
				coverage = 0
			}

			i := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			// 预乘 Alpha 格式，四个通道同步缩放
			img.Pix[i+0] = uint8(float64(img.Pix[i+0]) * coverage)
			img.Pix[i+1] = uint8(float64(img.Pix[i+1]) * coverage)
			img.Pix[i+2] = uint8(float64(img.Pix[i+2]) * coverage)
			img.Pix[i+3] = uint8(float64(img.Pix[i+3]) * coverage)
		}
	}
}
