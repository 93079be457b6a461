package waveview

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontFamily 内置默认字体族（Go 字体）
const DefaultFontFamily = "go"

// FontFamily 一个字体族的四种样式来源
// 缺失的样式回退到 Normal
type FontFamily struct {
	Normal     *text.GoTextFaceSource
	Bold       *text.GoTextFaceSource
	Italic     *text.GoTextFaceSource
	BoldItalic *text.GoTextFaceSource
}

// FontRegistry 字体族注册表
//
// 控件通过族名 + 样式解析出绘制用的 text.GoTextFace。
// 未注册的族名回退到默认字体族（缺失数据按"使用默认"处理，不报错）。
type FontRegistry struct {
	families map[string]*FontFamily
}

// NewFontRegistry 创建空的字体注册表
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{families: make(map[string]*FontFamily)}
}

// Register 注册一个字体族
// fam 为 nil 或 Normal 缺失时忽略并记录日志
func (r *FontRegistry) Register(name string, fam *FontFamily) {
	if name == "" || fam == nil || fam.Normal == nil {
		log.Printf("[WaveView] 忽略无效字体族注册: %q", name)
		return
	}
	r.families[name] = fam
}

// Face 解析绘制用字体
//
// 族名为空或未注册时使用默认字体族；样式来源缺失时回退 Normal；
// 彻底无可用来源时返回 nil（调用方跳过文本绘制）。
func (r *FontRegistry) Face(family string, style FontStyle, size float64) *text.GoTextFace {
	fam := r.families[family]
	if fam == nil {
		fam = r.families[DefaultFontFamily]
	}
	if fam == nil {
		return nil
	}

	src := fam.Normal
	switch style {
	case FontStyleBold:
		if fam.Bold != nil {
			src = fam.Bold
		}
	case FontStyleItalic:
		if fam.Italic != nil {
			src = fam.Italic
		}
	case FontStyleBoldItalic:
		if fam.BoldItalic != nil {
			src = fam.BoldItalic
		}
	}
	if src == nil {
		return nil
	}

	return &text.GoTextFace{Source: src, Size: size}
}

var defaultFonts *FontRegistry

// DefaultFonts 返回进程级默认字体注册表（内置 Go 字体族）
//
// 首次调用时解析内置 TTF；解析失败时返回空注册表并记录日志，
// 后续文本绘制优雅降级为不绘制。
func DefaultFonts() *FontRegistry {
	if defaultFonts != nil {
		return defaultFonts
	}

	reg := NewFontRegistry()
	fam := &FontFamily{
		Normal:     parseFontSource("goregular", goregular.TTF),
		Bold:       parseFontSource("gobold", gobold.TTF),
		Italic:     parseFontSource("goitalic", goitalic.TTF),
		BoldItalic: parseFontSource("gobolditalic", gobolditalic.TTF),
	}
	if fam.Normal != nil {
		reg.families[DefaultFontFamily] = fam
	}

	defaultFonts = reg
	return defaultFonts
}

func parseFontSource(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Printf("[WaveView] 内置字体 %s 解析失败: %v", name, err)
		return nil
	}
	return src
}
