package bullet

import (
	"errors"
	"time"

	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/timer"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Enemy,Effects

// 生成子弹失败的原因，由宿主的 Spawner 返回
var (
	ErrPopulationLimit = errors.New("bullet population limit reached")
	ErrGenerationLimit = errors.New("split generation limit reached")
)

// Enemy 宿主提供的敌人句柄
// 核心只引用敌人，不管理其生命周期
type Enemy interface {
	Position() (x, y float64)
	TakeDamage(amount float64, shieldBreak bool)
	ApplyPoison(amount float64)
	ApplySlow(multiplier float64, duration time.Duration)
	// Nudge 将敌人平移一段距离（磁力牵引）
	Nudge(dx, dy float64)
}

// World 战场查询
type World interface {
	// Enemies 当前存活的敌人
	Enemies() []Enemy
}

// Spawner 将新子弹接入宿主（创建实体、碰撞体等）
// 超出数量限制时返回 ErrPopulationLimit
type Spawner interface {
	// Admit 检查同一谱系再接入 n 颗子弹是否超出上限，不产生副作用
	Admit(shotID string, n int) error
	Spawn(b *Bullet) error
}

// Scheduler 延迟回调服务
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) timer.Handle
}

// EffectKind 表现效果类型
type EffectKind int

const (
	EffectMuzzle EffectKind = iota
	EffectSplit
	EffectExplode
	EffectBounce
	EffectHit
	EffectSpeedUp
	EffectHomingTrail
	EffectSpeedTrail
)

// String 效果名称，用于日志
func (k EffectKind) String() string {
	switch k {
	case EffectMuzzle:
		return "muzzle"
	case EffectSplit:
		return "split"
	case EffectExplode:
		return "explode"
	case EffectBounce:
		return "bounce"
	case EffectHit:
		return "hit"
	case EffectSpeedUp:
		return "speed-up"
	case EffectHomingTrail:
		return "homing-trail"
	case EffectSpeedTrail:
		return "speed-trail"
	default:
		return "unknown"
	}
}

// Effects 纯表现层效果，失败只记录日志，不影响程序状态
type Effects interface {
	Play(kind EffectKind, x, y float64) error
	// Follow 挂载跟随子弹的效果，返回的 release 在子弹销毁时调用
	Follow(kind EffectKind, b *Bullet) (release func(), err error)
}

// Env 子弹运行时依赖的外部协作者
// Effects 和 OnExecute 可为 nil
type Env struct {
	World   World
	Spawner Spawner
	Timers  Scheduler
	Effects Effects
	Tuning  Tuning

	// OnExecute 每个 DO 分派之前调用，用于追踪（无头模拟器打印分派记录）
	OnExecute func(b *Bullet, index int, node program.Node)
}
