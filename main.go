package main

import (
	"flag"
	"log"

	"github.com/decker502/waveview/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var verbose = flag.Bool("verbose", false, "显示详细日志")

func main() {
	flag.Parse()

	galleryApp, err := app.NewApp(app.Config{Verbose: *verbose})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("WaveView Gallery")

	if err := ebiten.RunGame(galleryApp); err != nil {
		log.Fatal(err)
	}

	// 正常退出时保存设置
	if err := galleryApp.SettingsManager().Save(); err != nil {
		log.Printf("[Main] 设置保存失败: %v", err)
	}
}
