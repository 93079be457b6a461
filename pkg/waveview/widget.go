// Package waveview 实现圆形波浪加载控件的渲染与动画核心
//
// 控件用一张圆形裁剪的图像叠加动画正弦波"水位"来表现进度（0–100），
// 并支持居中的主文本与副标题。宿主负责每帧调用 Update(dt) 与 Draw，
// 并把自身的生命周期事件接到 OnActivate / OnDeactivate /
// OnVisibilityChange 上；控件本身没有后台 goroutine，也不主动请求重绘，
// 只通过 NeedsRedraw 暴露合并后的重绘意图。
package waveview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/waveview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Widget 圆形波浪加载控件
//
// 所有可变状态（位图、图案、排版缓存）由控件实例独占，
// 单线程协作模型下无并发写者，不需要加锁。
type Widget struct {
	width  int
	height int

	loader   LoaderState
	text     TextState
	subtitle SubtitleState
	autoSize AutoSizeState

	fonts *FontRegistry

	// 图源与位图缓存（被替换，从不就地修改）
	source      image.Image
	sourceDirty bool
	circleImage *ebiten.Image
	circleMask  *ebiten.Image
	wavePattern *ebiten.Image
	scratch     *ebiten.Image

	// 位图缓存的构建参数，用于判定是否需要重建
	builtSide   int
	builtBorder float64
	builtColor  color.RGBA

	fill fillTween
	wave waveTween

	cache layoutCache

	attached bool
	visible  bool

	needsRedraw bool
	description string
}

// New 按配置创建控件
//
// 初始水位直接落在 1 - progress/100（不播放入场动画）。
// 波形循环在首次 OnActivate 后才会启动。
func New(opts Options) *Widget {
	w := &Widget{
		fonts:   DefaultFonts(),
		visible: true,
	}

	progress := utils.ClampInt(opts.Progress, 0, 100)
	w.loader = LoaderState{
		Progress:          progress,
		WaterLevelRatio:   1 - float64(progress)/100,
		AmplitudeRatio:    utils.Clamp(opts.AmplitudeRatio, 0, MaxAmplitudeRatio),
		WaveColor:         opts.WaveColor,
		WaveEnabled:       opts.WaveEnabled,
		WaveCyclePeriodMs: normalizePeriod(opts.WaveCyclePeriodMs),
		BorderWidth:       utils.Clamp(opts.BorderWidth, 0, 1e9),
	}
	w.text = TextState{
		Text:               opts.Text,
		Size:               opts.TextSize,
		Color:              opts.TextColor,
		FontFamily:         opts.TextFontFamily,
		Style:              opts.TextStyle,
		LetterSpacing:      opts.TextLetterSpacing,
		OffsetX:            opts.TextOffsetX,
		OffsetY:            opts.TextOffsetY,
		WidthMode:          opts.TextWidthMode,
		Shadow:             opts.TextShadow,
		ShadowEnabled:      opts.TextShadowEnabled,
		ShowProgressText:   opts.ShowProgressText,
		ProgressTextFormat: opts.ProgressTextFormat,
	}
	w.subtitle = SubtitleState{
		Text:       opts.SubtitleText,
		Size:       opts.SubtitleSize,
		Color:      opts.SubtitleColor,
		FontFamily: opts.SubtitleFontFamily,
		Style:      opts.SubtitleStyle,
		OffsetY:    opts.SubtitleOffsetY,
	}
	w.autoSize = AutoSizeState{
		Enabled: opts.AutoSizeText,
		MinSize: opts.AutoSizeMinTextSize,
	}

	w.description = fmt.Sprintf("Loading: %d percent", progress)
	w.cache.markAllDirty()
	w.sourceDirty = true
	w.needsRedraw = true
	return w
}

// Apply 按配置整体重设控件属性
//
// 用于回收复用后的重新绑定：进度立即到位（不播动画），
// 其余属性走常规 Setter 路径，排版与位图按需重建。
func (w *Widget) Apply(opts Options) {
	w.SetColor(opts.WaveColor)
	w.SetAmplitudeRatio(opts.AmplitudeRatio)
	w.SetWaveSpeed(opts.WaveCyclePeriodMs)
	w.SetWaveEnabled(opts.WaveEnabled)
	w.SetBorderWidth(opts.BorderWidth)

	w.SetText(opts.Text)
	w.SetTextSize(opts.TextSize)
	w.SetTextColor(opts.TextColor)
	w.SetTextFontFamily(opts.TextFontFamily)
	w.SetTextStyle(opts.TextStyle)
	w.SetTextLetterSpacing(opts.TextLetterSpacing)
	w.SetTextOffsetX(opts.TextOffsetX)
	w.SetTextOffsetY(opts.TextOffsetY)
	w.SetTextWidthMode(opts.TextWidthMode)
	if opts.TextShadowEnabled {
		w.SetTextShadow(opts.TextShadow.Radius, opts.TextShadow.DX, opts.TextShadow.DY, opts.TextShadow.Color)
	} else {
		w.text.ShadowEnabled = false
	}
	w.SetShowProgressText(opts.ShowProgressText)
	w.SetProgressTextFormat(opts.ProgressTextFormat)

	w.SetSubtitleText(opts.SubtitleText)
	w.SetSubtitleTextSize(opts.SubtitleSize)
	w.SetSubtitleTextColor(opts.SubtitleColor)
	w.SetSubtitleFontFamily(opts.SubtitleFontFamily)
	w.SetSubtitleStyle(opts.SubtitleStyle)
	w.SetSubtitleOffsetY(opts.SubtitleOffsetY)

	w.SetAutoSizeText(opts.AutoSizeText)
	w.SetAutoSizeMinTextSize(opts.AutoSizeMinTextSize)

	w.SetProgress(opts.Progress, 0)
}

func normalizePeriod(ms int) int {
	if ms <= 0 {
		return DefaultWaveCyclePeriodMs
	}
	return ms
}

// SetFonts 替换字体注册表（nil 忽略）
func (w *Widget) SetFonts(reg *FontRegistry) {
	if reg == nil {
		return
	}
	w.fonts = reg
	w.cache.markAllDirty()
	w.needsRedraw = true
}

// ---- 进度 ----

// SetProgress 提交目标进度并启动水位动画
//
// value 收敛到 [0, 100]；durationMs 省略时为 1000，<=0 表示立即到位。
// 动画从当前水位出发（最后一次调用生效，不排队、不跳变）。
func (w *Widget) SetProgress(value int, durationMs ...int) {
	duration := DefaultFillDurationMs
	if len(durationMs) > 0 {
		duration = durationMs[0]
	}

	clamped := utils.ClampInt(value, 0, 100)
	progressTextActive := w.text.Text == nil && w.text.ShowProgressText

	w.loader.Progress = clamped
	w.description = fmt.Sprintf("Loading: %d percent", clamped)

	target := 1 - float64(clamped)/100
	if duration <= 0 {
		w.fill.stop()
		w.loader.WaterLevelRatio = target
	} else {
		w.fill.start(w.loader.WaterLevelRatio, target, float64(duration)/1000)
	}

	if progressTextActive {
		w.cache.primaryDirty = true
	}
	w.needsRedraw = true
}

// Progress 返回最近一次提交的进度
func (w *Widget) Progress() int {
	return w.loader.Progress
}

// WaterLevelRatio 返回当前水位比例（0=满，1=空）
func (w *Widget) WaterLevelRatio() float64 {
	return w.loader.WaterLevelRatio
}

// WaveShiftRatio 返回当前波形相位 [0, 1)
func (w *Widget) WaveShiftRatio() float64 {
	return w.loader.WaveShiftRatio
}

// Description 返回人类可读的状态描述，如 "Loading: 42 percent"
func (w *Widget) Description() string {
	return w.description
}

// ---- 波形 ----

// SetColor 设置波形（及边框）颜色，触发波形图案重建
func (w *Widget) SetColor(c color.RGBA) {
	w.loader.WaveColor = c
	w.needsRedraw = true
}

// SetBorderWidth 设置边框描边宽度（像素，负值按 0 处理）
func (w *Widget) SetBorderWidth(px float64) {
	w.loader.BorderWidth = utils.Clamp(px, 0, 1e9)
	w.needsRedraw = true
}

// SetAmplitudeRatio 设置振幅比例，收敛到 [0, MaxAmplitudeRatio]
// 只影响绘制变换，不触发图案重建
func (w *Widget) SetAmplitudeRatio(ratio float64) {
	w.loader.AmplitudeRatio = utils.Clamp(ratio, 0, MaxAmplitudeRatio)
	w.needsRedraw = true
}

// SetWaveEnabled 开关波形横移动画
// 关闭立即冻结相位；重新开启从相位 0 重新循环
func (w *Widget) SetWaveEnabled(enabled bool) {
	w.loader.WaveEnabled = enabled
	w.updateWaveRunning()
	w.needsRedraw = true
}

// SetWaveSpeed 设置波形横移周期（毫秒）
// 循环进行中会用新周期从头重启
func (w *Widget) SetWaveSpeed(periodMs int) {
	w.loader.WaveCyclePeriodMs = normalizePeriod(periodMs)
	if w.wave.running {
		w.wave.start(float64(w.loader.WaveCyclePeriodMs) / 1000)
		w.loader.WaveShiftRatio = 0
	}
	w.needsRedraw = true
}

// ---- 主文本 ----

// SetText 设置显式文本；nil 恢复为进度文本（启用时）或无文本
func (w *Widget) SetText(s *string) {
	w.text.Text = s
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// Text 返回显式文本（未设置时为 nil）
func (w *Widget) Text() *string {
	return w.text.Text
}

// DisplayText 返回当前解析出的显示文本（可能为 nil）
func (w *Widget) DisplayText() *string {
	return resolveDisplayText(&w.text, w.loader.Progress)
}

// SetTextSize 设置主文本字号（像素，负值按 0 处理）
func (w *Widget) SetTextSize(px float64) {
	w.text.Size = utils.Clamp(px, 0, 1e9)
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetTextColor 设置主文本颜色
func (w *Widget) SetTextColor(c color.RGBA) {
	w.text.Color = c
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetTextFontFamily 设置主文本字体族（空串使用默认字体）
func (w *Widget) SetTextFontFamily(family string) {
	w.text.FontFamily = family
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetTextStyle 设置主文本样式
func (w *Widget) SetTextStyle(style FontStyle) {
	w.text.Style = style
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetTextLetterSpacing 设置主文本额外字距（像素）
func (w *Widget) SetTextLetterSpacing(px float64) {
	w.text.LetterSpacing = px
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetTextOffsetX 设置文本块横向偏移
func (w *Widget) SetTextOffsetX(px float64) {
	w.text.OffsetX = px
	w.needsRedraw = true
}

// SetTextOffsetY 设置文本块纵向偏移
func (w *Widget) SetTextOffsetY(px float64) {
	w.text.OffsetY = px
	w.needsRedraw = true
}

// SetTextWidthMode 设置排版宽度模式
func (w *Widget) SetTextWidthMode(mode WidthMode) {
	w.text.WidthMode = mode
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetTextShadow 设置并启用主文本阴影
func (w *Widget) SetTextShadow(radius, dx, dy float64, c color.RGBA) {
	w.text.Shadow = TextShadow{Color: c, Radius: radius, DX: dx, DY: dy}
	w.text.ShadowEnabled = true
	w.needsRedraw = true
}

// SetShowProgressText 开关进度文本（无显式文本时生效）
func (w *Widget) SetShowProgressText(show bool) {
	w.text.ShowProgressText = show
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetProgressTextFormat 设置进度文本格式串
// 必须恰好含一个整数占位符（如 "%d%%"）；不做校验，格式错误由调用方负责
func (w *Widget) SetProgressTextFormat(format string) {
	w.text.ProgressTextFormat = format
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// ---- 副标题 ----

// SetSubtitleText 设置副标题文本（nil 表示无副标题）
func (w *Widget) SetSubtitleText(s *string) {
	w.subtitle.Text = s
	w.cache.subtitleDirty = true
	w.needsRedraw = true
}

// SubtitleText 返回副标题文本
func (w *Widget) SubtitleText() *string {
	return w.subtitle.Text
}

// SetSubtitleTextSize 设置副标题字号
func (w *Widget) SetSubtitleTextSize(px float64) {
	w.subtitle.Size = utils.Clamp(px, 0, 1e9)
	w.cache.subtitleDirty = true
	w.needsRedraw = true
}

// SetSubtitleTextColor 设置副标题颜色
func (w *Widget) SetSubtitleTextColor(c color.RGBA) {
	w.subtitle.Color = c
	w.cache.subtitleDirty = true
	w.needsRedraw = true
}

// SetSubtitleFontFamily 设置副标题字体族
func (w *Widget) SetSubtitleFontFamily(family string) {
	w.subtitle.FontFamily = family
	w.cache.subtitleDirty = true
	w.needsRedraw = true
}

// SetSubtitleStyle 设置副标题样式
func (w *Widget) SetSubtitleStyle(style FontStyle) {
	w.subtitle.Style = style
	w.cache.subtitleDirty = true
	w.needsRedraw = true
}

// SetSubtitleOffsetY 设置副标题在主文本下方的额外间距
func (w *Widget) SetSubtitleOffsetY(px float64) {
	w.subtitle.OffsetY = px
	w.needsRedraw = true
}

// ---- 自动字号 ----

// SetAutoSizeText 开关自动字号
func (w *Widget) SetAutoSizeText(enabled bool) {
	w.autoSize.Enabled = enabled
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// SetAutoSizeMinTextSize 设置自动字号下限（像素）
func (w *Widget) SetAutoSizeMinTextSize(px float64) {
	w.autoSize.MinSize = utils.Clamp(px, 0, 1e9)
	w.cache.primaryDirty = true
	w.needsRedraw = true
}

// ---- 图源与尺寸 ----

// SetSourceImage 设置源图（nil 表示无图，显示空白圆形）
// 触发图像管线重算（居中裁剪 + 缩放 + 圆形蒙板）
func (w *Widget) SetSourceImage(img image.Image) {
	w.source = img
	w.sourceDirty = true
	w.needsRedraw = true
}

// SetSize 设置控件尺寸（宿主测量结果）
// 尺寸变化会重建全部位图缓存并置脏全部排版
func (w *Widget) SetSize(width, height int) {
	if width == w.width && height == w.height {
		return
	}
	w.width = width
	w.height = height
	w.cache.markAllDirty()
	w.needsRedraw = true
}

// Size 返回当前控件尺寸
func (w *Widget) Size() (int, int) {
	return w.width, w.height
}

// ---- 生命周期 ----

// OnActivate 宿主挂载信号：允许波形循环启动
func (w *Widget) OnActivate() {
	w.attached = true
	w.updateWaveRunning()
}

// OnDeactivate 宿主卸载信号：立即停止波形循环（相位冻结）
func (w *Widget) OnDeactivate() {
	w.attached = false
	w.updateWaveRunning()
}

// OnVisibilityChange 可见性信号：不可见时波形循环立即停止
func (w *Widget) OnVisibilityChange(visible bool) {
	w.visible = visible
	w.updateWaveRunning()
}

// updateWaveRunning 根据 启用 × 挂载 × 可见 三个条件同步波形循环
// 从停止到运行总是从相位 0 重新开始
func (w *Widget) updateWaveRunning() {
	desired := w.loader.WaveEnabled && w.attached && w.visible
	switch {
	case desired && !w.wave.running:
		w.wave.start(float64(w.loader.WaveCyclePeriodMs) / 1000)
		w.loader.WaveShiftRatio = 0
		w.needsRedraw = true
	case !desired && w.wave.running:
		w.wave.stop()
	}
}

// ---- 帧驱动 ----

// Update 推进动画 dt 秒（宿主每帧调用一次）
// 任何比例变化都会标记重绘；重绘合并由宿主的帧调度完成
func (w *Widget) Update(dt float64) {
	if w.fill.active {
		v, _ := w.fill.advance(dt)
		w.loader.WaterLevelRatio = v
		w.needsRedraw = true
	}
	if w.wave.running {
		w.loader.WaveShiftRatio = w.wave.advance(dt)
		w.needsRedraw = true
	}
}

// NeedsRedraw 报告自上次 Draw 以来是否有状态变化
func (w *Widget) NeedsRedraw() bool {
	return w.needsRedraw
}

// ---- 回收 ----

// Recycle 为复用做回收：取消动画、丢弃位图与排版缓存
//
// 幂等且不抛错，可在虚拟化列表里反复调用。属性状态保留，
// 水位直接落到目标值；下次绑定/绘制会按当前属性完整重建。
func (w *Widget) Recycle() {
	w.fill.stop()
	w.wave.stop()
	w.attached = false
	w.loader.WaterLevelRatio = 1 - float64(w.loader.Progress)/100

	w.circleImage = nil
	w.circleMask = nil
	w.wavePattern = nil
	w.scratch = nil
	w.builtSide = 0
	w.sourceDirty = true

	w.cache = layoutCache{}
	w.cache.markAllDirty()

	w.needsRedraw = true
}
