package waveview

import "image/color"

// 核心默认值
//
// 波形图案始终按 DefaultAmplitudeRatio 生成，绘制时再按
// 当前振幅比例做纵向缩放，避免振幅变化触发图案重建。
const (
	// DefaultAmplitudeRatio 默认振幅比例（波高 / 控件高度）
	DefaultAmplitudeRatio = 0.05
	// MaxAmplitudeRatio 振幅比例上限
	MaxAmplitudeRatio = 0.05
	// DefaultWaterLevelRatio 波形图案的基准水位（图案高度的一半）
	DefaultWaterLevelRatio = 0.5
	// DefaultWaveCyclePeriodMs 波形横移一个周期的默认时长（毫秒）
	DefaultWaveCyclePeriodMs = 1000
	// DefaultFillDurationMs 水位动画的默认时长（毫秒）
	DefaultFillDurationMs = 1000
	// maxTextWidthRatio 文本最大宽度占圆直径的比例
	maxTextWidthRatio = 0.85
)

// FontStyle 字体样式
type FontStyle string

const (
	FontStyleNormal     FontStyle = "normal"
	FontStyleBold       FontStyle = "bold"
	FontStyleItalic     FontStyle = "italic"
	FontStyleBoldItalic FontStyle = "bold_italic"
)

// WidthMode 文本排版宽度模式
type WidthMode string

const (
	// WidthModeWrap 按实测文本宽度排版（不超过最大宽度）
	WidthModeWrap WidthMode = "wrap"
	// WidthModeMatch 始终按最大宽度排版
	WidthModeMatch WidthMode = "match"
)

// LoaderState 加载控件的持久配置与运行时状态（纯数据）
//
// 不变量：
//   - WaterLevelRatio 的动画目标始终等于 1 - Progress/100（0=满，1=空）
//   - WaveShiftRatio 在波形启用期间循环递增并对 1 取模
type LoaderState struct {
	Progress          int     // 最近一次提交的目标进度 [0, 100]
	WaterLevelRatio   float64 // 当前水位比例 [0, 1]（动画值）
	WaveShiftRatio    float64 // 波形横移相位 [0, 1)（动画值，循环）
	AmplitudeRatio    float64 // 振幅比例 [0, MaxAmplitudeRatio]
	WaveColor         color.RGBA
	WaveEnabled       bool
	WaveCyclePeriodMs int     // 波形横移一个周期的时长（毫秒）
	BorderWidth       float64 // 边框描边宽度（像素，0 表示无边框）
}

// TextShadow 文本阴影配置
//
// Radius 保留为状态字段；渲染以偏移叠加近似阴影（与对话框标题
// 的阴影画法一致），不做真实高斯模糊。
type TextShadow struct {
	Color  color.RGBA
	Radius float64
	DX     float64
	DY     float64
}

// TextState 主文本配置（纯数据）
//
// 显示文本的解析优先级：显式 Text > 进度文本（ShowProgressText
// 时按 ProgressTextFormat 格式化）> 无。
type TextState struct {
	Text               *string // 显式文本，nil 表示未设置
	Size               float64
	Color              color.RGBA
	FontFamily         string // 空串使用默认字体族
	Style              FontStyle
	LetterSpacing      float64
	OffsetX            float64
	OffsetY            float64
	WidthMode          WidthMode
	Shadow             TextShadow
	ShadowEnabled      bool
	ShowProgressText   bool
	ProgressTextFormat string // 恰好含一个整数占位符（如 "%d%%"），不做校验
}

// SubtitleState 副标题配置（主文本配置的子集）
type SubtitleState struct {
	Text       *string
	Size       float64
	Color      color.RGBA
	FontFamily string
	Style      FontStyle
	OffsetY    float64 // 主文本下方的额外间距
}

// AutoSizeState 自动字号配置
//
// 启用时，排版使用计算出的有效字号（不回写 TextState.Size）。
type AutoSizeState struct {
	Enabled bool
	MinSize float64
}
