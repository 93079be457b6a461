// Package app 提供画廊应用的核心包装器
//
// 将初始化逻辑从 main 包提取出来，便于入口程序与验证工具共用。
package app

import (
	"io"
	"log"

	"github.com/decker502/waveview/pkg/gallery"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 画廊应用包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *gallery.SceneManager
	settings     *gallery.SettingsManager
	verbose      bool
}

// NewApp 创建并初始化画廊应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// gdata 打开失败走降级模式（设置仅存内存），不阻止启动
	gdataManager, err := gdata.Open(gdata.Config{AppName: "waveview_gallery"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settings := gallery.NewSettingsManager(gdataManager)

	sceneManager := gallery.NewSceneManager()
	sceneManager.SwitchTo(gallery.NewGalleryScene(settings, ScreenWidth, ScreenHeight))

	log.Printf("[App] Gallery initialized")
	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑，每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面，每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸，与实际窗口大小解耦
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// SettingsManager 返回设置管理器（退出时保存用）
func (a *App) SettingsManager() *gallery.SettingsManager {
	return a.settings
}
