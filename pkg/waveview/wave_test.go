package waveview

import (
	"math"
	"testing"
)

// TestWavePatternColumns 测试波面高度计算
func TestWavePatternColumns(t *testing.T) {
	t.Run("长度等于宽度", func(t *testing.T) {
		ys := wavePatternColumns(200, 100, DefaultAmplitudeRatio)
		if len(ys) != 200 {
			t.Fatalf("列数 = %d, 期望 200", len(ys))
		}
	})

	t.Run("起点在基准水位", func(t *testing.T) {
		ys := wavePatternColumns(200, 100, DefaultAmplitudeRatio)
		// sin(0) = 0，首列正好落在 height/2
		if math.Abs(ys[0]-50) > 0.001 {
			t.Errorf("ys[0] = %v, 期望 50", ys[0])
		}
	})

	t.Run("四分之一波长处到达波峰", func(t *testing.T) {
		ys := wavePatternColumns(200, 100, DefaultAmplitudeRatio)
		// sin(π/2) = 1，振幅 = 100 × 0.05 = 5
		if math.Abs(ys[50]-55) > 0.1 {
			t.Errorf("ys[50] = %v, 期望约 55", ys[50])
		}
	})

	t.Run("振幅约束所有列", func(t *testing.T) {
		ys := wavePatternColumns(300, 120, DefaultAmplitudeRatio)
		amplitude := 120 * DefaultAmplitudeRatio
		for x, y := range ys {
			if y < 60-amplitude-0.001 || y > 60+amplitude+0.001 {
				t.Errorf("ys[%d] = %v 超出振幅范围 [%v, %v]", x, y, 60-amplitude, 60+amplitude)
			}
		}
	})

	t.Run("首尾相位连续", func(t *testing.T) {
		ys := wavePatternColumns(256, 128, DefaultAmplitudeRatio)
		// 一个完整周期：末列紧接首列
		expected := 64 + 128*DefaultAmplitudeRatio*math.Sin(2*math.Pi*255/256)
		if math.Abs(ys[255]-expected) > 0.001 {
			t.Errorf("末列 = %v, 期望 %v", ys[255], expected)
		}
	})

	t.Run("零振幅退化为直线", func(t *testing.T) {
		ys := wavePatternColumns(100, 100, 0)
		for x, y := range ys {
			if math.Abs(y-50) > 0.001 {
				t.Errorf("零振幅时 ys[%d] = %v, 期望 50", x, y)
			}
		}
	})

	t.Run("非法尺寸返回nil", func(t *testing.T) {
		if ys := wavePatternColumns(0, 100, 0.05); ys != nil {
			t.Errorf("宽度 0 应返回 nil, 实际 %v", ys)
		}
		if ys := wavePatternColumns(100, -1, 0.05); ys != nil {
			t.Errorf("负高度应返回 nil, 实际 %v", ys)
		}
	})
}
