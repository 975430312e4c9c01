// Package battle 组装一局战斗：实体、子弹运行时、各个系统和本局状态
//
// 不依赖窗口和输入，游戏场景和无头模拟器共用同一套更新顺序。
package battle

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/config"
	"github.com/gonewx/bulletprog/pkg/ecs"
	"github.com/gonewx/bulletprog/pkg/entities"
	"github.com/gonewx/bulletprog/pkg/game"
	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/systems"
	"github.com/gonewx/bulletprog/pkg/timer"
)

// ErrGameOver 本局已结束
var ErrGameOver = errors.New("game is over")

// Options 战斗的可选项
type Options struct {
	// AutoSpawn 定时在右侧生成敌人
	AutoSpawn bool
	// NoPlayer 不创建玩家（无头模拟）
	NoPlayer bool
	// Rand 敌人生成的随机源，nil 使用随机种子
	Rand *rand.Rand
	// OnExecute 追踪每次 DO 分派
	OnExecute func(b *bullet.Bullet, index int, node program.Node)
}

// Battle 一局战斗
type Battle struct {
	cfg       *config.GameConfig
	authoring *program.Authoring
	state     *game.GameState

	em      *ecs.EntityManager
	timers  *timer.Scheduler
	env     *bullet.Env
	spawner *systems.BulletSpawner
	world   *systems.EnemyWorld
	effects *systems.EffectsAdapter

	playerID  ecs.EntityID
	hasPlayer bool

	// 按更新顺序
	playerSystem    *systems.PlayerSystem
	enemySpawn      *systems.EnemySpawnSystem
	timerSystem     *systems.TimerSystem
	programSystem   *systems.BulletProgramSystem
	movementSystem  *systems.MovementSystem
	collisionSystem *systems.CollisionSystem
	enemySystem     *systems.EnemySystem
	lifetimeSystem  *systems.LifetimeSystem
	flashSystem     *systems.FlashEffectSystem
	effectSystem    *systems.EffectSystem

	autoSpawn bool
	frame     int
}

// New 创建一局战斗
//
// 参数:
//   - cfg: 数值配置，已通过 Validate
//   - authoring: 程序编辑上下文，重新开始时沿用同一个
//   - opts: 可选项
//
// 返回:
//   - *Battle: 战斗实例
//   - error: 创建玩家失败时返回
func New(cfg *config.GameConfig, authoring *program.Authoring, opts Options) (*Battle, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if authoring == nil {
		authoring = program.NewAuthoring()
	}

	em := ecs.NewEntityManager()
	rules := &systems.StatusRules{
		PoisonFactor:   cfg.Enemy.PoisonFactor,
		PoisonInterval: config.Millis(cfg.Enemy.PoisonInterval),
		PoisonDuration: config.Millis(cfg.Enemy.PoisonDuration),
		FlashDuration:  systems.DefaultStatusRules().FlashDuration,
	}
	arena := systems.Arena{
		Width:        cfg.World.Width,
		Height:       cfg.World.Height,
		BulletMargin: cfg.World.OutOfBoundsMargin,
	}

	b := &Battle{
		cfg:       cfg,
		authoring: authoring,
		state:     game.NewGameState(),
		em:        em,
		timers:    timer.NewScheduler(),
		world:     systems.NewEnemyWorld(em, rules),
		effects:   systems.NewEffectsAdapter(em),
		autoSpawn: opts.AutoSpawn,
	}
	b.spawner = systems.NewBulletSpawner(em,
		entities.BulletSpec{Radius: cfg.Bullet.Radius, MaxLifetime: cfg.Bullet.MaxLifetime},
		systems.BulletLimits{MaxLive: cfg.Limits.MaxLiveBullets, MaxPerShot: cfg.Limits.MaxPerShot},
	)
	b.env = &bullet.Env{
		World:     b.world,
		Spawner:   b.spawner,
		Timers:    b.timers,
		Effects:   b.effects,
		Tuning:    cfg.Tuning(),
		OnExecute: opts.OnExecute,
	}

	b.playerSystem = systems.NewPlayerSystem(em, arena)
	b.playerSystem.OnFire = func(x, y float64) {
		if _, err := b.Fire(); err != nil {
			log.Printf("[Battle] 发射失败: %v", err)
		}
	}
	b.enemySpawn = systems.NewEnemySpawnSystem(em, cfg.Enemy, arena, opts.Rand)
	b.timerSystem = systems.NewTimerSystem(b.timers)
	b.programSystem = systems.NewBulletProgramSystem(em)
	b.movementSystem = systems.NewMovementSystem(em, arena)
	b.collisionSystem = systems.NewCollisionSystem(em, b.world)
	b.collisionSystem.OnPlayerHit = b.onPlayerHit
	b.enemySystem = systems.NewEnemySystem(em, arena, cfg.World.EnemyDespawnMargin, cfg.Enemy.RetargetInterval)
	b.enemySystem.OnKilled = b.onEnemyKilled
	b.lifetimeSystem = systems.NewLifetimeSystem(em)
	b.flashSystem = systems.NewFlashEffectSystem(em)
	b.effectSystem = systems.NewEffectSystem(em)

	if !opts.NoPlayer {
		id, err := entities.NewPlayerEntity(em, cfg.World.Width*0.15, cfg.World.Height/2,
			cfg.Player.Speed, cfg.Player.Size, cfg.Player.FireCooldown)
		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		b.playerID = id
		b.hasPlayer = true
	}

	log.Printf("[Battle] 战场 %.0fx%.0f, autoSpawn=%v, player=%v", cfg.World.Width, cfg.World.Height, opts.AutoSpawn, b.hasPlayer)
	return b, nil
}

// Update 推进一帧
//
// 顺序：输入与发射 → 敌人生成 → 子弹定时器 → 子弹程序 → 子弹移动与撞墙
// → 碰撞 → 敌人移动与击杀结算 → 生命周期 → 表现效果 → 清理实体
func (b *Battle) Update(dt float64) {
	b.frame++
	b.state.Tick(dt)

	if !b.state.IsGameOver {
		b.playerSystem.Update(dt)
		if b.autoSpawn {
			b.enemySpawn.Update(dt)
		}
	}
	b.timerSystem.Update(dt)
	b.programSystem.Update(dt)
	b.movementSystem.Update(dt)
	b.collisionSystem.Update(dt)
	b.enemySystem.Update(dt)
	b.lifetimeSystem.Update(dt)
	b.flashSystem.Update(dt)
	b.effectSystem.Update(dt)

	b.em.RemoveMarkedEntities()
}

// SetControls 设置本帧玩家输入
func (b *Battle) SetControls(c systems.PlayerControls) {
	b.playerSystem.SetControls(c)
}

// Fire 从玩家枪口向右发射第一个合法槽位的程序
func (b *Battle) Fire() (*bullet.Bullet, error) {
	if b.state.IsGameOver {
		return nil, ErrGameOver
	}
	x, y, ok := b.PlayerPosition()
	if !ok {
		return nil, fmt.Errorf("no player")
	}

	prog, slot := b.authoring.Fireable()
	x += b.cfg.Player.MuzzleOffset
	shot, err := b.FireProgram(prog, x, y, 0)
	if err != nil {
		return nil, err
	}
	if err := b.effects.Play(bullet.EffectMuzzle, x, y); err != nil {
		log.Printf("[Battle] 枪口效果失败: %v", err)
	}
	log.Printf("[Battle] 发射槽位 %d: %s", slot+1, prog)
	return shot, nil
}

// FireProgram 在 (x, y) 以 heading 发射程序
func (b *Battle) FireProgram(p program.Program, x, y, heading float64) (*bullet.Bullet, error) {
	shot, err := bullet.Fire(b.env, p, x, y, heading)
	if errors.Is(err, bullet.ErrPopulationLimit) {
		log.Printf("[Battle] 子弹数量已达上限 (live=%d)", b.spawner.Live())
	}
	return shot, err
}

// SpawnEnemy 在 (x, y) 生成一个敌人
// speed < 0 时使用配置的速度
func (b *Battle) SpawnEnemy(x, y, speed float64, shielded bool) (ecs.EntityID, error) {
	if speed < 0 {
		speed = b.cfg.Enemy.Speed
	}
	tx, ty := x-1, y
	if px, py, ok := b.PlayerPosition(); ok {
		tx, ty = px, py
	}
	return entities.NewEnemyEntity(b.em, entities.EnemySpec{
		Speed:        speed,
		Health:       b.cfg.Enemy.Health,
		Size:         b.cfg.Enemy.Size,
		Shielded:     shielded,
		ShieldHealth: b.cfg.Enemy.ShieldHealth,
	}, x, y, tx, ty)
}

func (b *Battle) onEnemyKilled(x, y float64) {
	if b.state.RecordKill(b.cfg.Enemy.ScorePerKill) {
		log.Printf("[Battle] 进入第 %d 关", b.state.Stage)
	}
}

// onPlayerHit 游戏结束：销毁所有子弹（同步取消定时器），停止生成敌人
func (b *Battle) onPlayerHit(x, y float64) {
	if !b.state.SetGameOver() {
		return
	}
	destroyed := 0
	for _, shot := range b.Bullets() {
		shot.Destroy()
		destroyed++
	}
	b.enemySpawn.Disable()
	if _, err := entities.NewEffectRing(b.em, entities.GameOverRing, x, y); err != nil {
		log.Printf("[Battle] 结束效果失败: %v", err)
	}
	log.Printf("[Battle] 游戏结束: score=%d, 销毁 %d 颗子弹", b.state.Score, destroyed)
}

// Bullets 存活的子弹，按创建顺序
func (b *Battle) Bullets() []*bullet.Bullet {
	ids := ecs.GetEntitiesWith1[*components.BulletComponent](b.em)
	out := make([]*bullet.Bullet, 0, len(ids))
	for _, id := range ids {
		bc, _ := ecs.GetComponent[*components.BulletComponent](b.em, id)
		if bc.Bullet.Alive() {
			out = append(out, bc.Bullet)
		}
	}
	return out
}

// Enemies 存活的敌人句柄
func (b *Battle) Enemies() []bullet.Enemy {
	return b.world.Enemies()
}

// PlayerPosition 玩家位置
func (b *Battle) PlayerPosition() (float64, float64, bool) {
	if !b.hasPlayer {
		return 0, 0, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](b.em, b.playerID)
	if !ok {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}

// EntityManager 实体管理器（绘制用）
func (b *Battle) EntityManager() *ecs.EntityManager { return b.em }

// State 本局状态
func (b *Battle) State() *game.GameState { return b.state }

// Authoring 程序编辑上下文
func (b *Battle) Authoring() *program.Authoring { return b.authoring }

// Config 数值配置
func (b *Battle) Config() *config.GameConfig { return b.cfg }

// Timers 子弹定时器
func (b *Battle) Timers() *timer.Scheduler { return b.timers }

// LiveBullets 场上子弹数
func (b *Battle) LiveBullets() int { return b.spawner.Live() }

// Frame 已更新的帧数
func (b *Battle) Frame() int { return b.frame }
