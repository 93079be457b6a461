package utils

import (
	"math"
	"testing"
)

// TestEaseLinear 测试线性缓动函数
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseLinear(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseLinear(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 减速曲线：位置始终不落后于线性
	t.Run("整体快于线性", func(t *testing.T) {
		for p := 0.0; p <= 1.0; p += 0.1 {
			eased := EaseOutCubic(p)
			if eased < EaseLinear(p)-0.001 {
				t.Errorf("EaseOutCubic(%v) = %v 不应该落后于线性值", p, eased)
			}
		}
	})
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0, 10, 0, 0},
		{"终点", 0, 10, 1, 10},
		{"中点", 0, 10, 0.5, 5},
		{"反向区间", 1, 0, 0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp 测试区间收敛
func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"区间内", 0.5, 0, 1, 0.5},
		{"低于下限", -3, 0, 1, 0},
		{"高于上限", 42, 0, 1, 1},
		{"恰在边界", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Clamp(tt.v, tt.lo, tt.hi); result != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, 期望 %v", tt.v, tt.lo, tt.hi, result, tt.expected)
			}
		})
	}
}

// TestClampInt 测试整数区间收敛
func TestClampInt(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		expected  int
	}{
		{"区间内", 50, 0, 100, 50},
		{"低于下限", -10, 0, 100, 0},
		{"高于上限", 150, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ClampInt(tt.v, tt.lo, tt.hi); result != tt.expected {
				t.Errorf("ClampInt(%v, %v, %v) = %v, 期望 %v", tt.v, tt.lo, tt.hi, result, tt.expected)
			}
		})
	}
}

// TestWrap01 测试循环取模归一化
func TestWrap01(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"零", 0, 0},
		{"区间内", 0.3, 0.3},
		{"恰好一圈", 1.0, 0},
		{"多圈", 2.7, 0.7},
		{"负值", -0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap01(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Wrap01(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}
