// Package gallery 实现加载控件的演示画廊
//
// 画廊是一个纵向滚动的虚拟化列表：行数任意多，而控件实例只有
// 一个固定大小的池，滚出视口的行释放控件（Recycle），滚入的行
// 从池里取控件重新绑定。这正是控件回收钩子的目标使用场景。
package gallery

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 画廊场景接口
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 将场景渲染到 screen
	Draw(screen *ebiten.Image)
}

// SceneManager 管理当前活动场景
// 任意时刻只有一个场景的 Update/Draw 被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有活动场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// CurrentScene 返回当前活动场景（可能为 nil）
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Update 推进当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 渲染当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
