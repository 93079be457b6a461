package gallery

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/waveview/pkg/config"
	"github.com/decker502/waveview/pkg/ecs"
	"github.com/decker502/waveview/pkg/waveview"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 列表布局常量
const (
	rowHeight  = 150.0
	widgetSize = 120
	widgetX    = 40.0
	labelX     = 200.0
	rowCount   = 32
	poolSize   = 8 // 视口最多容纳 5 行，留余量
)

// RowComponent 列表行组件（纯数据）
//
// Bound 为 nil 表示该行当前没有绑定控件实例（不在视口内）。
type RowComponent struct {
	Index          int
	Title          string
	Subtitle       string
	TargetProgress int
	Bound          *waveview.Widget
}

// GalleryScene 虚拟化列表场景
//
// 控件池固定大小；行滚入视口时从池里取控件绑定，滚出时
// Recycle 后归还。按键：0-9 设置进度、W 开关波形、T 切换主题、
// R 强制回收重绑全部行。
type GalleryScene struct {
	entityManager *ecs.EntityManager
	settings      *SettingsManager

	themes     map[string]config.Theme
	themeNames []string

	pool []*waveview.Widget

	scroll  float64
	screenW int
	screenH int

	titleFace *text.GoTextFace
	infoFace  *text.GoTextFace
}

// NewGalleryScene 创建画廊场景
func NewGalleryScene(settings *SettingsManager, screenW, screenH int) *GalleryScene {
	s := &GalleryScene{
		entityManager: ecs.NewEntityManager(),
		settings:      settings,
		themes:        config.BuiltinThemes(),
		screenW:       screenW,
		screenH:       screenH,
	}
	s.themeNames = config.ThemeNames(s.themes)

	fonts := waveview.DefaultFonts()
	s.titleFace = fonts.Face("", waveview.FontStyleBold, 18)
	s.infoFace = fonts.Face("", waveview.FontStyleNormal, 14)

	// 控件池：实例数量与行数无关
	for i := 0; i < poolSize; i++ {
		w := waveview.New(waveview.DefaultOptions())
		w.SetSize(widgetSize, widgetSize)
		s.pool = append(s.pool, w)
	}

	// 行实体
	for i := 0; i < rowCount; i++ {
		id := s.entityManager.CreateEntity()
		s.entityManager.AddComponent(id, &RowComponent{
			Index:          i,
			Title:          fmt.Sprintf("任务 %02d", i+1),
			Subtitle:       fmt.Sprintf("分片 %d", i%7+1),
			TargetProgress: (i*17 + 23) % 101,
		})
	}

	log.Printf("[Gallery] 场景就绪: %d 行, 控件池 %d", rowCount, poolSize)
	return s
}

// Update 处理输入、维护绑定、推进控件动画
func (s *GalleryScene) Update(deltaTime float64) {
	s.handleInput()
	s.rebindVisibleRows()

	for _, id := range ecs.GetEntitiesWith1[*RowComponent](s.entityManager) {
		row, ok := ecs.GetComponent[*RowComponent](s.entityManager, id)
		if !ok || row.Bound == nil {
			continue
		}
		row.Bound.Update(deltaTime)
	}
}

func (s *GalleryScene) handleInput() {
	// 滚动：滚轮 + 方向键
	_, wheelY := ebiten.Wheel()
	s.scroll -= wheelY * 40
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		s.scroll += 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		s.scroll -= 8
	}
	maxScroll := rowHeight*rowCount - float64(s.screenH)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	// 数字键：设置全部可见行的进度（0-9 → 0%-90%，P → 100%）
	for d := 0; d <= 9; d++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(int(ebiten.Key0) + d)) {
			s.setVisibleProgress(d * 10)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.setVisibleProgress(100)
	}

	// W：开关波形动画
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		settings := s.settings.GetSettings()
		settings.WaveEnabled = !settings.WaveEnabled
		for _, row := range s.boundRows() {
			row.Bound.SetWaveEnabled(settings.WaveEnabled)
		}
		if err := s.settings.Save(); err != nil {
			log.Printf("[Gallery] 设置保存失败: %v", err)
		}
	}

	// T：轮换主题并重绑全部行
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		settings := s.settings.GetSettings()
		settings.Theme = s.nextThemeName(settings.Theme)
		s.unbindAll()
		if err := s.settings.Save(); err != nil {
			log.Printf("[Gallery] 设置保存失败: %v", err)
		}
		log.Printf("[Gallery] 切换主题: %s", settings.Theme)
	}

	// R：回收churn——全部行强制回收，下一帧重绑
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.unbindAll()
		log.Printf("[Gallery] 强制回收全部控件")
	}
}

func (s *GalleryScene) setVisibleProgress(progress int) {
	settings := s.settings.GetSettings()
	settings.Progress = progress
	for _, row := range s.boundRows() {
		row.TargetProgress = progress
		row.Bound.SetProgress(progress)
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[Gallery] 设置保存失败: %v", err)
	}
}

func (s *GalleryScene) nextThemeName(current string) string {
	for i, name := range s.themeNames {
		if name == current {
			return s.themeNames[(i+1)%len(s.themeNames)]
		}
	}
	if len(s.themeNames) > 0 {
		return s.themeNames[0]
	}
	return current
}

func (s *GalleryScene) boundRows() []*RowComponent {
	var rows []*RowComponent
	for _, id := range ecs.GetEntitiesWith1[*RowComponent](s.entityManager) {
		if row, ok := ecs.GetComponent[*RowComponent](s.entityManager, id); ok && row.Bound != nil {
			rows = append(rows, row)
		}
	}
	return rows
}

// rebindVisibleRows 维护"视口内的行才持有控件"这一不变量
func (s *GalleryScene) rebindVisibleRows() {
	first := int(math.Floor(s.scroll / rowHeight))
	last := int(math.Floor((s.scroll + float64(s.screenH)) / rowHeight))

	for _, id := range ecs.GetEntitiesWith1[*RowComponent](s.entityManager) {
		row, ok := ecs.GetComponent[*RowComponent](s.entityManager, id)
		if !ok {
			continue
		}

		visible := row.Index >= first && row.Index <= last
		switch {
		case visible && row.Bound == nil:
			s.bindRow(row)
		case !visible && row.Bound != nil:
			s.unbindRow(row)
		}
	}
}

// bindRow 从池里取控件，按当前主题重新初始化后绑定到行
func (s *GalleryScene) bindRow(row *RowComponent) {
	if len(s.pool) == 0 {
		// 池耗尽，本帧先空着，下一帧会再尝试
		log.Printf("[Gallery] 控件池耗尽, 行 %d 暂不绑定", row.Index)
		return
	}

	w := s.pool[len(s.pool)-1]
	s.pool = s.pool[:len(s.pool)-1]

	settings := s.settings.GetSettings()
	theme, ok := s.themes[settings.Theme]
	if !ok {
		theme = config.DefaultTheme()
	}

	opts, err := theme.Options()
	if err != nil {
		log.Printf("[Gallery] 主题 %q 无效: %v (回落默认)", settings.Theme, err)
		opts = waveview.DefaultOptions()
		opts.ShowProgressText = true
	}
	opts.WaveEnabled = settings.WaveEnabled
	if opts.SubtitleText == nil {
		opts.SubtitleText = &row.Subtitle
	}

	w.Apply(opts)
	w.SetSize(widgetSize, widgetSize)
	w.OnActivate()
	w.OnVisibilityChange(true)

	// 绑定后播放从 0 到目标值的水位动画
	w.SetProgress(row.TargetProgress)

	row.Bound = w
}

// unbindRow 回收控件并归还池
func (s *GalleryScene) unbindRow(row *RowComponent) {
	row.Bound.Recycle()
	s.pool = append(s.pool, row.Bound)
	row.Bound = nil
}

func (s *GalleryScene) unbindAll() {
	for _, row := range s.boundRows() {
		s.unbindRow(row)
	}
}

// Draw 渲染可见行
func (s *GalleryScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff})

	for _, id := range ecs.GetEntitiesWith1[*RowComponent](s.entityManager) {
		row, ok := ecs.GetComponent[*RowComponent](s.entityManager, id)
		if !ok || row.Bound == nil {
			continue
		}

		rowY := float64(row.Index)*rowHeight - s.scroll
		row.Bound.Draw(screen, widgetX, rowY+(rowHeight-widgetSize)/2)

		s.drawLabel(screen, row.Title, s.titleFace, labelX, rowY+45)
		s.drawLabel(screen, row.Bound.Description(), s.infoFace, labelX, rowY+75)
	}

	settings := s.settings.GetSettings()
	help := fmt.Sprintf("theme=%s wave=%v | 0-9/P progress, W wave, T theme, R recycle",
		settings.Theme, settings.WaveEnabled)
	ebitenutil.DebugPrintAt(screen, help, 8, s.screenH-18)
}

func (s *GalleryScene) drawLabel(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff})
	text.Draw(screen, str, face, op)
}
