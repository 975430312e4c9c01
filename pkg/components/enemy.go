package components

import "time"

// PoisonStatus 中毒状态：每个周期造成一次伤害，直到剩余时间耗尽
type PoisonStatus struct {
	Active    bool
	Damage    float64       // 每次跳伤
	Interval  time.Duration // 跳伤间隔
	SinceTick time.Duration // 距上次跳伤
	Remaining time.Duration
}

// SlowStatus 减速状态，结束后倍率恢复为 1
type SlowStatus struct {
	Active     bool
	Multiplier float64
	Remaining  time.Duration
}

// ShieldStatus 护盾先于生命值吸收非破盾伤害
type ShieldStatus struct {
	Active bool
	Health float64
}

// EnemyComponent 敌人的移动参数和状态效果
type EnemyComponent struct {
	BaseSpeed float64 // 基础速度（像素/秒）
	Heading   float64 // 移动方向（弧度）
	// RetargetTimer 距下次重新瞄准玩家的剩余时间（秒）
	RetargetTimer float64

	Poison PoisonStatus
	Slow   SlowStatus
	Shield ShieldStatus
}

// SpeedMultiplier 当前生效的速度倍率
func (e *EnemyComponent) SpeedMultiplier() float64 {
	if e.Slow.Active {
		return e.Slow.Multiplier
	}
	return 1
}
