package gallery

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时目录里创建隔离的 gdata 管理器
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: "waveview_gallery_test"})
	if err != nil {
		t.Fatalf("gdata.Open 失败: %v", err)
	}
	return m
}

// TestSettingsDefaults 测试默认设置
func TestSettingsDefaults(t *testing.T) {
	settings := DefaultSettings()
	if settings.Theme != "default" {
		t.Errorf("默认主题 = %q, 期望 default", settings.Theme)
	}
	if settings.Progress != 60 {
		t.Errorf("默认进度 = %d, 期望 60", settings.Progress)
	}
	if !settings.WaveEnabled {
		t.Error("波形默认应启用")
	}
}

// TestSettingsManagerDegraded 测试无存储时的降级模式
func TestSettingsManagerDegraded(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings().Theme != "default" {
		t.Errorf("降级模式应使用默认设置, 实际 %+v", sm.GetSettings())
	}

	// 保存与加载都不报错
	sm.GetSettings().Progress = 85
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save 错误: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("降级模式 Load 错误: %v", err)
	}
}

// TestSettingsRoundTrip 测试设置持久化往返
func TestSettingsRoundTrip(t *testing.T) {
	m := newTestGdata(t)

	sm := NewSettingsManager(m)
	sm.GetSettings().Theme = "ocean"
	sm.GetSettings().Progress = 42
	sm.GetSettings().WaveEnabled = false
	if err := sm.Save(); err != nil {
		t.Fatalf("Save 错误: %v", err)
	}

	// 新管理器从同一存储加载
	sm2 := NewSettingsManager(m)
	loaded := sm2.GetSettings()
	if loaded.Theme != "ocean" {
		t.Errorf("主题 = %q, 期望 ocean", loaded.Theme)
	}
	if loaded.Progress != 42 {
		t.Errorf("进度 = %d, 期望 42", loaded.Progress)
	}
	if loaded.WaveEnabled {
		t.Error("波形开关应为 false")
	}
}

// TestSettingsLoadMissing 测试首次启动（无存档）
func TestSettingsLoadMissing(t *testing.T) {
	m := newTestGdata(t)

	sm := NewSettingsManager(m)
	if sm.GetSettings().Theme != "default" || sm.GetSettings().Progress != 60 {
		t.Errorf("无存档应使用默认设置, 实际 %+v", sm.GetSettings())
	}
}

// TestSettingsLoadPartial 测试部分键缺失时保持默认
func TestSettingsLoadPartial(t *testing.T) {
	m := newTestGdata(t)

	// 手工写入只含主题的设置
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("theme: amber\n")); err != nil {
		t.Fatalf("预写设置失败: %v", err)
	}

	sm := NewSettingsManager(m)
	loaded := sm.GetSettings()
	if loaded.Theme != "amber" {
		t.Errorf("主题 = %q, 期望 amber", loaded.Theme)
	}
	// 未出现的键回落默认
	if loaded.Progress != 60 {
		t.Errorf("进度 = %d, 期望默认 60", loaded.Progress)
	}
	if !loaded.WaveEnabled {
		t.Error("波形开关应保持默认 true")
	}
}

// TestSettingsLoadCorrupt 测试损坏数据回落默认
func TestSettingsLoadCorrupt(t *testing.T) {
	m := newTestGdata(t)

	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("{::: not yaml")); err != nil {
		t.Fatalf("预写设置失败: %v", err)
	}

	sm := &SettingsManager{gdataManager: m, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("损坏数据应返回错误")
	}
	if sm.GetSettings().Theme != "default" {
		t.Errorf("损坏数据后应回落默认, 实际 %+v", sm.GetSettings())
	}
}
