package components

// TimerComponent 循环计时器组件
// 用于周期性行为（如敌人生成），到期后保留溢出时间继续计时
type TimerComponent struct {
	Name        string  // 计时器名称，如 "enemy_spawn"
	TargetTime  float64 // 本轮目标时间（秒）
	CurrentTime float64 // 本轮已过时间（秒）
	IsReady     bool    // 本轮是否已到期
}

// Advance 推进 dt 秒，到期时返回 true 并扣除本轮目标时间
// 调用方在到期后用 Rearm 设置下一轮目标
func (t *TimerComponent) Advance(dt float64) bool {
	t.CurrentTime += dt
	if t.CurrentTime < t.TargetTime {
		return false
	}
	t.CurrentTime -= t.TargetTime
	t.IsReady = true
	return true
}

// Rearm 设置下一轮目标时间
func (t *TimerComponent) Rearm(target float64) {
	t.TargetTime = target
	t.IsReady = false
}
