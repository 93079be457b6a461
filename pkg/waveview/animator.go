package waveview

import "github.com/decker502/waveview/pkg/utils"

// 动画器
//
// 单线程协作模型：宿主每帧调用 Widget.Update(dt) 推进这里的补间，
// 没有后台 goroutine。替换进行中的动画 = 覆盖补间字段，天然原子。

// fillTween 水位补间（一次性，减速曲线）
//
// 状态机：Idle ↔ Animating。新的进度请求总是从"当前值"重新出发
// （最后一次调用生效，不排队、不跳变）。
type fillTween struct {
	from     float64
	to       float64
	duration float64 // 秒
	elapsed  float64
	active   bool
}

// start 启动（或替换）一次水位动画
// durationSec <= 0 表示立即到位
func (t *fillTween) start(from, to, durationSec float64) {
	if durationSec <= 0 {
		t.active = false
		t.from = to
		t.to = to
		return
	}
	t.from = from
	t.to = to
	t.duration = durationSec
	t.elapsed = 0
	t.active = true
}

// stop 取消动画，保持当前值
func (t *fillTween) stop() {
	t.active = false
}

// advance 推进 dt 秒，返回当前水位值与是否仍在动画中
func (t *fillTween) advance(dt float64) (float64, bool) {
	if !t.active {
		return t.to, false
	}

	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.active = false
		return t.to, false
	}

	progress := utils.EaseOutCubic(t.elapsed / t.duration)
	return utils.Lerp(t.from, t.to, progress), true
}

// waveTween 波形相位补间（线性循环）
//
// 在 period 秒内从 0 线性走到 1，随后对 1 取模继续。
// 停止时相位冻结在最后的值；重新启动总是从 0 开始。
type waveTween struct {
	period  float64 // 秒
	elapsed float64
	value   float64
	running bool
}

// start 从相位 0 重新开始循环
func (t *waveTween) start(periodSec float64) {
	if periodSec <= 0 {
		periodSec = float64(DefaultWaveCyclePeriodMs) / 1000
	}
	t.period = periodSec
	t.elapsed = 0
	t.value = 0
	t.running = true
}

// stop 立即停止，相位冻结
func (t *waveTween) stop() {
	t.running = false
}

// advance 推进 dt 秒，返回当前相位 [0, 1)
func (t *waveTween) advance(dt float64) float64 {
	if !t.running {
		return t.value
	}
	t.elapsed += dt
	t.value = utils.Wrap01(t.elapsed / t.period)
	return t.value
}
