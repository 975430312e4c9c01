package systems

import (
	"log"
	"math/rand/v2"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/config"
	"github.com/gonewx/bulletprog/pkg/ecs"
	"github.com/gonewx/bulletprog/pkg/entities"
)

// 敌人出生区域：战场右侧外
const (
	spawnMinOffsetX = 20.0
	spawnMaxOffsetX = 100.0
	spawnMarginY    = 50.0
)

const enemySpawnTimerName = "enemy_spawn"

// EnemySpawnSystem 定时在战场右侧生成敌人
// 开局先以较短间隔生成 InitialCount 个，之后按 SpawnDelay 持续生成
type EnemySpawnSystem struct {
	em    *ecs.EntityManager
	cfg   config.EnemyConfig
	arena Arena
	rng   *rand.Rand

	timerID ecs.EntityID
	spawned int
	enabled bool
}

// NewEnemySpawnSystem 创建敌人生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 敌人数值
//   - arena: 战场边界
//   - rng: 随机数源，传 nil 使用随机种子
func NewEnemySpawnSystem(em *ecs.EntityManager, cfg config.EnemyConfig, arena Arena, rng *rand.Rand) *EnemySpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &EnemySpawnSystem{
		em:      em,
		cfg:     cfg,
		arena:   arena,
		rng:     rng,
		enabled: true,
	}
	s.timerID = em.CreateEntity()
	ecs.AddComponent(em, s.timerID, &components.TimerComponent{
		Name:       enemySpawnTimerName,
		TargetTime: s.nextDelay(),
	})
	log.Printf("[EnemySpawnSystem] Initialized: initial=%d every %dms, then every %dms",
		cfg.InitialCount, cfg.InitialInterval, cfg.SpawnDelay)
	return s
}

// nextDelay 下一次生成的间隔（秒）
func (s *EnemySpawnSystem) nextDelay() float64 {
	if s.spawned < s.cfg.InitialCount {
		return config.Millis(s.cfg.InitialInterval).Seconds()
	}
	return config.Millis(s.cfg.SpawnDelay).Seconds()
}

// Update 推进生成计时器
func (s *EnemySpawnSystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.timerID)
	if !ok {
		return
	}

	if !timer.Advance(dt) {
		return
	}

	if _, err := s.Spawn(); err != nil {
		log.Printf("[EnemySpawnSystem] 生成敌人失败: %v", err)
	}
	timer.Rearm(s.nextDelay())
}

// Spawn 立即生成一个敌人，朝玩家移动
func (s *EnemySpawnSystem) Spawn() (ecs.EntityID, error) {
	x := s.arena.Width + spawnMinOffsetX + s.rng.Float64()*(spawnMaxOffsetX-spawnMinOffsetX)
	y := spawnMarginY + s.rng.Float64()*(s.arena.Height-2*spawnMarginY)

	tx, ty := s.arena.Width/2, s.arena.Height/2
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		tx, ty = pos.X, pos.Y
		break
	}

	spec := entities.EnemySpec{
		Speed:        s.cfg.Speed,
		Health:       s.cfg.Health,
		Size:         s.cfg.Size,
		Shielded:     s.rng.Float64() < s.cfg.ShieldChance,
		ShieldHealth: s.cfg.ShieldHealth,
	}
	id, err := entities.NewEnemyEntity(s.em, spec, x, y, tx, ty)
	if err != nil {
		return 0, err
	}
	s.spawned++
	log.Printf("[EnemySpawnSystem] 敌人 %d 出生于 (%.0f, %.0f) shield=%v", id, x, y, spec.Shielded)
	return id, nil
}

// Spawned 已生成的敌人数
func (s *EnemySpawnSystem) Spawned() int { return s.spawned }

// Enable 恢复生成
func (s *EnemySpawnSystem) Enable() { s.enabled = true }

// Disable 停止生成（游戏结束）
func (s *EnemySpawnSystem) Disable() { s.enabled = false }
