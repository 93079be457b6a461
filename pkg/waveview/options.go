package waveview

import "image/color"

// Options 控件构造配置
//
// 每个字段与同名 Setter 一一对应，零值之外的默认值见 DefaultOptions。
// 主题预设（pkg/config）从 YAML 解析后转换为本结构。
type Options struct {
	Progress int // 初始进度 [0, 100]

	// 波形
	WaveColor         color.RGBA
	AmplitudeRatio    float64
	WaveEnabled       bool
	WaveCyclePeriodMs int

	// 边框
	BorderWidth float64

	// 主文本
	Text               *string
	TextSize           float64
	TextColor          color.RGBA
	TextFontFamily     string
	TextStyle          FontStyle
	TextLetterSpacing  float64
	TextOffsetX        float64
	TextOffsetY        float64
	TextWidthMode      WidthMode
	TextShadow         TextShadow
	TextShadowEnabled  bool
	ShowProgressText   bool
	ProgressTextFormat string

	// 副标题
	SubtitleText       *string
	SubtitleSize       float64
	SubtitleColor      color.RGBA
	SubtitleFontFamily string
	SubtitleStyle      FontStyle
	SubtitleOffsetY    float64

	// 自动字号
	AutoSizeText        bool
	AutoSizeMinTextSize float64
}

// DefaultOptions 返回文档化的默认配置
//
// 默认值：
//   - progress 0，振幅比例 0.05，波形启用，周期 1000ms
//   - 波形颜色 #212121，边框宽度 0（无边框）
//   - 主文本 24px 黑色，wrap 宽度模式，进度文本关闭，格式 "%d%%"
//   - 副标题 14px 灰色，额外间距 4px
//   - 自动字号关闭，下限 8px
func DefaultOptions() Options {
	return Options{
		Progress: 0,

		WaveColor:         color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff},
		AmplitudeRatio:    DefaultAmplitudeRatio,
		WaveEnabled:       true,
		WaveCyclePeriodMs: DefaultWaveCyclePeriodMs,

		BorderWidth: 0,

		TextSize:           24,
		TextColor:          color.RGBA{A: 0xff},
		TextStyle:          FontStyleNormal,
		TextWidthMode:      WidthModeWrap,
		ProgressTextFormat: "%d%%",

		SubtitleSize:    14,
		SubtitleColor:   color.RGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xff},
		SubtitleStyle:   FontStyleNormal,
		SubtitleOffsetY: 4,

		AutoSizeMinTextSize: 8,
	}
}
