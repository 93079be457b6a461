package gallery

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GallerySettings 画廊的持久化设置
type GallerySettings struct {
	Theme       string `yaml:"theme"`       // 当前主题名
	Progress    int    `yaml:"progress"`    // 最近设置的目标进度
	WaveEnabled bool   `yaml:"waveEnabled"` // 波形动画开关
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GallerySettings {
	return &GallerySettings{
		Theme:       "default",
		Progress:    60,
		WaveEnabled: true,
	}
}

// 存储路径常量
const (
	settingsObject   = "gallery"
	settingsProperty = "settings"
)

// SettingsManager 设置管理器
// 负责画廊设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 跨平台存储，可为 nil（降级为仅内存）
	settings     *GallerySettings
}

// NewSettingsManager 创建设置管理器
//
// gdataManager 为 nil 时进入降级模式（设置只存在内存里）。
// 加载失败不是致命错误，回落到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
// 文件不存在或管理器为 nil 时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 先填默认值再反序列化，YAML 里缺失的键保持默认
	loaded := *DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 管理器为 nil 时静默成功（降级模式）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved successfully")
	return nil
}

// GetSettings 返回当前设置（调用方修改后应调用 Save）
func (sm *SettingsManager) GetSettings() *GallerySettings {
	return sm.settings
}
