package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - letterSpacing: 额外字距（像素，可为 0）
//   - maxWidth: 最大宽度（像素）
//
// 返回换行后的文本数组（每个元素为一行）。
//
// 换行规则:
//   - 逐字符累加宽度，超宽即断行（支持中英文混排）
//   - 单个字符超宽时强制占一行，保证算法总是前进
func WrapText(textStr string, font *text.GoTextFace, letterSpacing, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 整体已能放下则不换行
	if MeasureTextWidth(textStr, font, letterSpacing) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)

		testLine := currentLine + char
		testWidth := MeasureTextWidth(testLine, font, letterSpacing)

		if testWidth > maxWidth {
			if currentLine == "" {
				// 单字符超宽，强制成行
				lines = append(lines, char)
				textStr = textStr[size:]
				continue
			}
			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = char
		} else {
			currentLine = testLine
		}

		textStr = textStr[size:]
	}

	if currentLine != "" {
		lines = append(lines, strings.TrimSpace(currentLine))
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// MeasureTextWidth 测量单行文本宽度（含额外字距）
//
// letterSpacing 按"字符间隙数"计入：n 个字符产生 n-1 个间隙。
func MeasureTextWidth(textStr string, font *text.GoTextFace, letterSpacing float64) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)

	if letterSpacing != 0 {
		n := utf8.RuneCountInString(textStr)
		if n > 1 {
			width += letterSpacing * float64(n-1)
		}
	}

	return width
}

// LineHeight 返回字体的单行高度（上升部 + 下降部）
func LineHeight(font *text.GoTextFace) float64 {
	if font == nil {
		return 0
	}
	m := font.Metrics()
	return m.HAscent + m.HDescent
}
