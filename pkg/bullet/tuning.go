package bullet

import (
	"math"
	"time"
)

// 程序语义约定的常量，不随配置变化
const (
	// TimerShortDelay timer-1 的延迟
	TimerShortDelay = 1000 * time.Millisecond
	// TimerLongDelay timer-2 的延迟
	TimerLongDelay = 2000 * time.Millisecond
	// ExplodeRadius 爆炸伤害半径
	ExplodeRadius = 80.0
	// ExplodeDamageFactor 爆炸伤害倍率
	ExplodeDamageFactor = 2.0
	// SplitAngle 分裂子弹相对当前朝向的偏转角（±30°）
	SplitAngle = math.Pi / 6
	// SpeedUpFactor 加速倍率
	SpeedUpFactor = 1.5
	// HighDamageFactor 高威力属性的伤害倍率
	HighDamageFactor = 2.0
)

// Tuning 可配置的数值
type Tuning struct {
	BaseSpeed        float64 // 初始速率（像素/秒）
	BaseDamage       float64 // 基础伤害
	MaxBounces       int     // 默认撞墙次数上限
	BounceMaxBounces int     // 启用反弹后的撞墙次数上限
	HomingTurnRate   float64 // 追踪每帧最大转向（弧度）
	MagneticRadius   float64 // 磁力作用半径
	MagneticStrength float64 // 磁力强度，牵引距离 = 强度 / 距离
	MaxGeneration    int     // 分裂代数上限
	SlowMultiplier   float64 // 减速倍率
	SlowDuration     time.Duration
}

// DefaultTuning 默认数值
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:        200,
		BaseDamage:       1,
		MaxBounces:       3,
		BounceMaxBounces: 5,
		HomingTurnRate:   0.08,
		MagneticRadius:   150,
		MagneticStrength: 120,
		MaxGeneration:    4,
		SlowMultiplier:   0.5,
		SlowDuration:     3 * time.Second,
	}
}
