// Package bullet 实现子弹程序的运行时：每颗子弹持有一份程序副本，
// 在初始化、计时器到期、碰撞回调以及每帧更新时重新扫描程序，
// 决定哪些 DO 节点执行（每个最多一次）。
//
// 所有入口都在宿主的单一逻辑线程上调用，不需要加锁。
package bullet

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/timer"
)

// Flags 由 PROPERTY 节点得出的被动属性，生成时计算一次
type Flags struct {
	Homing      bool
	Penetrate   bool
	HighDamage  bool
	Poison      bool
	Magnetic    bool
	ShieldBreak bool
	SlowEffect  bool
}

// FlagsOf 扫描程序中所有 PROPERTY 节点
func FlagsOf(p program.Program) Flags {
	var f Flags
	for _, node := range p {
		if node.Kind() != program.KindProperty {
			continue
		}
		switch node.Action() {
		case program.ActionHoming:
			f.Homing = true
		case program.ActionPenetrate:
			f.Penetrate = true
		case program.ActionHighDamage:
			f.HighDamage = true
		case program.ActionPoison:
			f.Poison = true
		case program.ActionMagnetic:
			f.Magnetic = true
		case program.ActionShieldBreak:
			f.ShieldBreak = true
		case program.ActionSlowEffect:
			f.SlowEffect = true
		}
	}
	return f
}

// Bullet 一颗运行中的程序化子弹
type Bullet struct {
	// ShotID 同一次发射及其所有分裂后代共享的谱系 id
	ShotID string
	// Generation 分裂代数，玩家直接发射的子弹为 0
	Generation int

	X, Y   float64
	VX, VY float64

	Speed       float64
	Damage      float64
	BounceCount int
	MaxBounces  int
	// Bounce 撞墙时是否弹性反弹
	Bounce bool

	Flags Flags

	program    program.Program
	conditions map[int]bool
	executed   map[int]struct{}
	timers     []timer.Handle
	releases   []func()
	hitEnemies map[Enemy]struct{}

	alive   bool
	started bool
	env     *Env
}

// New 创建子弹并应用 PROPERTY 属性，此时不注册触发器
// 宿主接入（Spawner.Spawn）之后调用 Start
func New(env *Env, prog program.Program, x, y, heading float64) *Bullet {
	b := newBullet(env, prog, x, y)
	b.ShotID = uuid.NewString()
	b.SetHeading(heading)
	return b
}

func newBullet(env *Env, prog program.Program, x, y float64) *Bullet {
	b := &Bullet{
		X:          x,
		Y:          y,
		Speed:      env.Tuning.BaseSpeed,
		Damage:     env.Tuning.BaseDamage,
		MaxBounces: env.Tuning.MaxBounces,
		program:    prog.Clone(),
		conditions: make(map[int]bool),
		executed:   make(map[int]struct{}),
		hitEnemies: make(map[Enemy]struct{}),
		alive:      true,
		env:        env,
	}
	b.applyProperties()
	return b
}

// applyProperties 设置属性标志并应用一次性数值效果
func (b *Bullet) applyProperties() {
	b.Flags = FlagsOf(b.program)
	if b.Flags.HighDamage {
		b.Damage *= HighDamageFactor
	}
}

// child 在当前位置创建分裂子弹，程序为独立副本
func (b *Bullet) child(heading float64) *Bullet {
	c := newBullet(b.env, b.program, b.X, b.Y)
	c.ShotID = b.ShotID
	c.Generation = b.Generation + 1
	c.Speed = b.Speed
	c.SetHeading(heading)
	return c
}

// Fire 创建子弹、接入宿主并启动程序
func Fire(env *Env, prog program.Program, x, y, heading float64) (*Bullet, error) {
	b := New(env, prog, x, y, heading)
	if err := env.spawn(b); err != nil {
		return nil, err
	}
	b.Start()
	return b, nil
}

// spawn 没有 Spawner 时子弹只存在于核心中（测试和无头模拟）
func (env *Env) spawn(b *Bullet) error {
	if env.Spawner == nil {
		return nil
	}
	return env.Spawner.Spawn(b)
}

func (env *Env) admit(shotID string, n int) error {
	if env.Spawner == nil {
		return nil
	}
	return env.Spawner.Admit(shotID, n)
}

// Start 注册 WHEN 触发器并执行第一次评估，重复调用无效
func (b *Bullet) Start() {
	if b.started || !b.alive {
		return
	}
	b.started = true

	for i, node := range b.program {
		if node.Kind() == program.KindWhen {
			b.registerTrigger(i, node)
		}
	}

	if b.Flags.Homing {
		b.follow(EffectHomingTrail)
	}

	b.EvaluateProgram()
}

// registerTrigger 按 WHEN 类型建立触发机制
func (b *Bullet) registerTrigger(index int, node program.Node) {
	switch node.Action() {
	case program.ActionImmediate:
		b.conditions[index] = true
	case program.ActionTimer1:
		b.schedule(index, TimerShortDelay)
	case program.ActionTimer2:
		b.schedule(index, TimerLongDelay)
	case program.ActionEnemyContact, program.ActionWallContact:
		b.conditions[index] = false
	}
}

func (b *Bullet) schedule(index int, delay time.Duration) {
	if b.env.Timers == nil {
		log.Printf("[BulletProgram] 没有定时器服务，WHEN %d 永远不会触发", index)
		b.conditions[index] = false
		return
	}
	b.conditions[index] = false
	h := b.env.Timers.Schedule(delay, func() {
		if !b.alive {
			return
		}
		b.conditions[index] = true
		b.EvaluateProgram()
	})
	b.timers = append(b.timers, h)
}

// OnDestroy 登记销毁时要释放的资源，按登记顺序执行一次
// 子弹已销毁时立即释放
func (b *Bullet) OnDestroy(release func()) {
	if release == nil {
		return
	}
	if !b.alive {
		release()
		return
	}
	b.releases = append(b.releases, release)
}

// Destroy 销毁子弹：同步取消所有定时器并释放跟随效果，重复调用无效
func (b *Bullet) Destroy() {
	if !b.alive {
		return
	}
	b.alive = false

	for _, h := range b.timers {
		h.Cancel()
	}
	b.timers = nil

	releases := b.releases
	b.releases = nil
	for _, release := range releases {
		release()
	}
}

// Alive 子弹是否存活
func (b *Bullet) Alive() bool { return b.alive }

// Program 返回程序副本
func (b *Bullet) Program() program.Program { return b.program.Clone() }

// Condition WHEN 节点的触发状态
func (b *Bullet) Condition(index int) bool { return b.conditions[index] }

// IsExecuted DO 节点是否已执行
func (b *Bullet) IsExecuted(index int) bool {
	_, ok := b.executed[index]
	return ok
}

// Executed 已执行的 DO 节点下标（升序）
func (b *Bullet) Executed() []int {
	out := make([]int, 0, len(b.executed))
	for i := range b.executed {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// PendingTimers 尚未触发的定时器数量
func (b *Bullet) PendingTimers() int {
	n := 0
	for _, h := range b.timers {
		if h.Pending() {
			n++
		}
	}
	return n
}

// Heading 当前速度方向（弧度）
func (b *Bullet) Heading() float64 {
	return math.Atan2(b.VY, b.VX)
}

// SetHeading 以当前速率设置朝向
func (b *Bullet) SetHeading(heading float64) {
	b.VX = math.Cos(heading) * b.Speed
	b.VY = math.Sin(heading) * b.Speed
}
