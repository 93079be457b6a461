// verify_waveview 控件核心行为验证工具
//
// 以固定脚本驱动一个控件实例：进度扫描、波形开关、回收重绑，
// 同时在屏幕和日志里输出关键状态，用于肉眼核对动画与缓存行为。
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/decker502/waveview/pkg/config"
	"github.com/decker502/waveview/pkg/waveview"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 480
	screenHeight = 480
	widgetSize   = 320
)

var (
	themeName = flag.String("theme", "ocean", "主题名 (default, ocean, amber, night, quiet)")
	verbose   = flag.Bool("verbose", false, "显示详细日志")
)

// 脚本阶段：每隔几秒切换一次行为
var script = []struct {
	name     string
	duration float64
	run      func(g *VerifyGame)
}{
	{"progress-30", 2.0, func(g *VerifyGame) { g.widget.SetProgress(30) }},
	{"progress-85", 2.0, func(g *VerifyGame) { g.widget.SetProgress(85) }},
	{"progress-85-replace", 0.3, func(g *VerifyGame) { g.widget.SetProgress(10) }},
	{"progress-10-replaced-by-95", 2.0, func(g *VerifyGame) { g.widget.SetProgress(95) }},
	{"wave-off", 2.0, func(g *VerifyGame) { g.widget.SetWaveEnabled(false) }},
	{"wave-on", 2.0, func(g *VerifyGame) { g.widget.SetWaveEnabled(true) }},
	{"recycle", 2.0, func(g *VerifyGame) {
		g.widget.Recycle()
		g.widget.Recycle() // 幂等性检查
		g.widget.OnActivate()
	}},
	{"progress-0-instant", 2.0, func(g *VerifyGame) { g.widget.SetProgress(0, 0) }},
	{"progress-100", 3.0, func(g *VerifyGame) { g.widget.SetProgress(100, 2500) }},
}

// VerifyGame 验证工具的游戏循环
type VerifyGame struct {
	widget     *waveview.Widget
	phase      int
	phaseClock float64
	done       bool
}

func newVerifyGame() (*VerifyGame, error) {
	themes := config.BuiltinThemes()
	theme, ok := themes[*themeName]
	if !ok {
		return nil, fmt.Errorf("未知主题: %q", *themeName)
	}

	opts, err := theme.Options()
	if err != nil {
		return nil, fmt.Errorf("主题解析失败: %w", err)
	}
	opts.ShowProgressText = true

	w := waveview.New(opts)
	w.SetSize(widgetSize, widgetSize)
	w.OnActivate()
	w.OnVisibilityChange(true)

	g := &VerifyGame{widget: w, phase: -1}
	return g, nil
}

// Update 推进脚本与控件动画
func (g *VerifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0

	if !g.done {
		g.phaseClock -= deltaTime
		if g.phaseClock <= 0 {
			g.phase++
			if g.phase >= len(script) {
				g.done = true
				log.Printf("[Verify] 脚本执行完毕")
			} else {
				step := script[g.phase]
				g.phaseClock = step.duration
				step.run(g)
				log.Printf("[Verify] 阶段 %s: progress=%d water=%.3f shift=%.3f desc=%q",
					step.name, g.widget.Progress(), g.widget.WaterLevelRatio(),
					g.widget.WaveShiftRatio(), g.widget.Description())
			}
		}
	}

	g.widget.Update(deltaTime)
	return nil
}

// Draw 绘制控件与状态信息
func (g *VerifyGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	g.widget.Draw(screen, (screenWidth-widgetSize)/2, (screenHeight-widgetSize)/2)

	phaseName := "done"
	if !g.done && g.phase >= 0 && g.phase < len(script) {
		phaseName = script[g.phase].name
	}
	status := fmt.Sprintf("phase=%s progress=%d water=%.3f shift=%.3f redraw=%v",
		phaseName, g.widget.Progress(), g.widget.WaterLevelRatio(),
		g.widget.WaveShiftRatio(), g.widget.NeedsRedraw())
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

// Layout 返回逻辑屏幕尺寸
func (g *VerifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetFlags(0)
	}

	game, err := newVerifyGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("verify_waveview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
