// Package config 提供控件主题预设的加载与解析
//
// 主题是 waveview.Options 的 YAML 外观：颜色用十六进制字符串，
// 枚举用小写字符串。内置预设通过 go:embed 随库分发，调用方也可
// 从自己的 YAML 文件加载覆盖。
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/waveview/pkg/waveview"
	"gopkg.in/yaml.v3"
)

// ColorHex 十六进制颜色串，支持 "#RRGGBB" 与 "#RRGGBBAA"
type ColorHex string

// RGBA 解析为 color.RGBA
// 空串返回全零颜色（透明黑），格式非法时返回错误
func (c ColorHex) RGBA() (color.RGBA, error) {
	s := strings.TrimPrefix(string(c), "#")
	if s == "" {
		return color.RGBA{}, nil
	}

	var hasAlpha bool
	switch len(s) {
	case 6:
	case 8:
		hasAlpha = true
	default:
		return color.RGBA{}, fmt.Errorf("无效颜色值 %q: 长度必须是 6 或 8 位十六进制", string(c))
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("无效颜色值 %q: %w", string(c), err)
	}

	if hasAlpha {
		return color.RGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// Theme 主题预设，字段与 waveview.Options 一一对应
//
// 解码前会先填入默认值，YAML 里未出现的键保持默认
// （与 GallerySettings 的加载方式一致）。
type Theme struct {
	Progress int `yaml:"progress"`

	WaveColor         ColorHex `yaml:"waveColor"`
	AmplitudeRatio    float64  `yaml:"amplitudeRatio"`
	WaveEnabled       bool     `yaml:"waveEnabled"`
	WaveCyclePeriodMs int      `yaml:"waveCyclePeriodMs"`

	BorderWidth float64 `yaml:"borderWidth"`

	Text               string   `yaml:"text"` // 空串表示未设置
	TextSize           float64  `yaml:"textSize"`
	TextColor          ColorHex `yaml:"textColor"`
	TextFontFamily     string   `yaml:"textFontFamily"`
	TextStyle          string   `yaml:"textStyle"`
	TextLetterSpacing  float64  `yaml:"textLetterSpacing"`
	TextOffsetX        float64  `yaml:"textOffsetX"`
	TextOffsetY        float64  `yaml:"textOffsetY"`
	TextWidthMode      string   `yaml:"textWidthMode"`
	TextShadowEnabled  bool     `yaml:"textShadowEnabled"`
	TextShadowColor    ColorHex `yaml:"textShadowColor"`
	TextShadowRadius   float64  `yaml:"textShadowRadius"`
	TextShadowDX       float64  `yaml:"textShadowDx"`
	TextShadowDY       float64  `yaml:"textShadowDy"`
	ShowProgressText   bool     `yaml:"showProgressText"`
	ProgressTextFormat string   `yaml:"progressTextFormat"`

	SubtitleText       string   `yaml:"subtitleText"`
	SubtitleSize       float64  `yaml:"subtitleTextSize"`
	SubtitleColor      ColorHex `yaml:"subtitleTextColor"`
	SubtitleFontFamily string   `yaml:"subtitleFontFamily"`
	SubtitleStyle      string   `yaml:"subtitleStyle"`
	SubtitleOffsetY    float64  `yaml:"subtitleOffsetY"`

	AutoSizeText        bool    `yaml:"autoSizeText"`
	AutoSizeMinTextSize float64 `yaml:"autoSizeMinTextSize"`
}

// DefaultTheme 返回与 waveview.DefaultOptions 对齐的默认主题
func DefaultTheme() Theme {
	return Theme{
		WaveColor:         "#212121",
		AmplitudeRatio:    waveview.DefaultAmplitudeRatio,
		WaveEnabled:       true,
		WaveCyclePeriodMs: waveview.DefaultWaveCyclePeriodMs,

		TextSize:           24,
		TextColor:          "#000000",
		TextStyle:          string(waveview.FontStyleNormal),
		TextWidthMode:      string(waveview.WidthModeWrap),
		ProgressTextFormat: "%d%%",

		SubtitleSize:    14,
		SubtitleColor:   "#757575",
		SubtitleStyle:   string(waveview.FontStyleNormal),
		SubtitleOffsetY: 4,

		AutoSizeMinTextSize: 8,
	}
}

// Options 将主题转换为控件构造配置
// 任一颜色解析失败即返回错误（不做半成品主题）
func (t Theme) Options() (waveview.Options, error) {
	opts := waveview.DefaultOptions()

	waveColor, err := t.WaveColor.RGBA()
	if err != nil {
		return opts, fmt.Errorf("waveColor: %w", err)
	}
	textColor, err := t.TextColor.RGBA()
	if err != nil {
		return opts, fmt.Errorf("textColor: %w", err)
	}
	shadowColor, err := t.TextShadowColor.RGBA()
	if err != nil {
		return opts, fmt.Errorf("textShadowColor: %w", err)
	}
	subtitleColor, err := t.SubtitleColor.RGBA()
	if err != nil {
		return opts, fmt.Errorf("subtitleTextColor: %w", err)
	}

	opts.Progress = t.Progress
	opts.WaveColor = waveColor
	opts.AmplitudeRatio = t.AmplitudeRatio
	opts.WaveEnabled = t.WaveEnabled
	opts.WaveCyclePeriodMs = t.WaveCyclePeriodMs
	opts.BorderWidth = t.BorderWidth

	if t.Text != "" {
		text := t.Text
		opts.Text = &text
	}
	opts.TextSize = t.TextSize
	opts.TextColor = textColor
	opts.TextFontFamily = t.TextFontFamily
	opts.TextStyle = waveview.FontStyle(t.TextStyle)
	opts.TextLetterSpacing = t.TextLetterSpacing
	opts.TextOffsetX = t.TextOffsetX
	opts.TextOffsetY = t.TextOffsetY
	opts.TextWidthMode = waveview.WidthMode(t.TextWidthMode)
	opts.TextShadowEnabled = t.TextShadowEnabled
	opts.TextShadow = waveview.TextShadow{
		Color:  shadowColor,
		Radius: t.TextShadowRadius,
		DX:     t.TextShadowDX,
		DY:     t.TextShadowDY,
	}
	opts.ShowProgressText = t.ShowProgressText
	opts.ProgressTextFormat = t.ProgressTextFormat

	if t.SubtitleText != "" {
		subtitle := t.SubtitleText
		opts.SubtitleText = &subtitle
	}
	opts.SubtitleSize = t.SubtitleSize
	opts.SubtitleColor = subtitleColor
	opts.SubtitleFontFamily = t.SubtitleFontFamily
	opts.SubtitleStyle = waveview.FontStyle(t.SubtitleStyle)
	opts.SubtitleOffsetY = t.SubtitleOffsetY

	opts.AutoSizeText = t.AutoSizeText
	opts.AutoSizeMinTextSize = t.AutoSizeMinTextSize

	return opts, nil
}

// LoadThemes 从 YAML 数据解析主题集合
//
// 顶层结构为 主题名 → 主题字段映射。每个主题先填入默认值再解码，
// YAML 中省略的键保持默认。
func LoadThemes(data []byte) (map[string]Theme, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("主题配置解析失败: %w", err)
	}

	themes := make(map[string]Theme, len(raw))
	for name, node := range raw {
		theme := DefaultTheme()
		if err := node.Decode(&theme); err != nil {
			return nil, fmt.Errorf("主题 %q 解析失败: %w", name, err)
		}
		themes[name] = theme
	}
	return themes, nil
}
