package systems

import (
	"math"
	"time"

	"github.com/gonewx/bulletprog/pkg/timer"
)

// TimerSystem 按帧推进子弹定时器
type TimerSystem struct {
	scheduler *timer.Scheduler

	// 累计的游戏时间，按总量取整推进，避免逐帧截断累积误差
	elapsed  float64
	advanced time.Duration
}

// NewTimerSystem 创建定时器系统
func NewTimerSystem(s *timer.Scheduler) *TimerSystem {
	return &TimerSystem{scheduler: s}
}

// Update 推进 dt 秒，到期回调在此同步执行
func (s *TimerSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	target := time.Duration(math.Round(s.elapsed * float64(time.Second)))
	if step := target - s.advanced; step > 0 {
		s.advanced = target
		s.scheduler.Advance(step)
	}
}
