package systems

import (
	"time"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// StatusRules 敌人状态效果的数值
type StatusRules struct {
	PoisonFactor   float64       // 毒伤 = 子弹伤害 × 系数
	PoisonInterval time.Duration // 跳伤间隔
	PoisonDuration time.Duration
	FlashDuration  float64 // 受击闪白时长（秒）
}

// DefaultStatusRules 默认状态效果数值
func DefaultStatusRules() *StatusRules {
	return &StatusRules{
		PoisonFactor:   0.5,
		PoisonInterval: time.Second,
		PoisonDuration: 5 * time.Second,
		FlashDuration:  0.1,
	}
}

// EnemyHandle 以实体实现 bullet.Enemy
// 值类型可比较，同一实体的句柄在不同帧之间相等
type EnemyHandle struct {
	em    *ecs.EntityManager
	id    ecs.EntityID
	rules *StatusRules
}

var _ bullet.Enemy = EnemyHandle{}

// NewEnemyHandle 创建敌人句柄
func NewEnemyHandle(em *ecs.EntityManager, id ecs.EntityID, rules *StatusRules) EnemyHandle {
	return EnemyHandle{em: em, id: id, rules: rules}
}

// ID 实体 ID
func (h EnemyHandle) ID() ecs.EntityID { return h.id }

// Position 敌人位置，实体已删除时返回 (0, 0)
func (h EnemyHandle) Position() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](h.em, h.id)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// TakeDamage 护盾先吸收非破盾伤害，生命值降到 0 时标记击杀
// 击杀的结算（计分、删除实体）由 EnemySystem 在本帧稍后处理
func (h EnemyHandle) TakeDamage(amount float64, shieldBreak bool) {
	health, ok := ecs.GetComponent[*components.HealthComponent](h.em, h.id)
	if !ok || health.Killed {
		return
	}

	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](h.em, h.id); ok && enemy.Shield.Active {
		if shieldBreak {
			enemy.Shield.Active = false
			enemy.Shield.Health = 0
		} else {
			enemy.Shield.Health -= amount
			if enemy.Shield.Health <= 0 {
				enemy.Shield.Active = false
				enemy.Shield.Health = 0
			}
			h.flash()
			return
		}
	}

	health.CurrentHealth -= amount
	h.flash()
	if health.CurrentHealth <= 0 {
		health.CurrentHealth = 0
		health.Killed = true
	}
}

// ApplyPoison 中毒：第一次跳伤在一个间隔之后，重复施加刷新持续时间
func (h EnemyHandle) ApplyPoison(amount float64) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](h.em, h.id)
	if !ok {
		return
	}
	enemy.Poison = components.PoisonStatus{
		Active:    true,
		Damage:    amount * h.rules.PoisonFactor,
		Interval:  h.rules.PoisonInterval,
		Remaining: h.rules.PoisonDuration,
	}
}

// ApplySlow 减速，重复施加覆盖倍率并刷新持续时间
func (h EnemyHandle) ApplySlow(multiplier float64, duration time.Duration) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](h.em, h.id)
	if !ok {
		return
	}
	enemy.Slow = components.SlowStatus{
		Active:     true,
		Multiplier: multiplier,
		Remaining:  duration,
	}
}

// Nudge 磁力牵引
func (h EnemyHandle) Nudge(dx, dy float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](h.em, h.id)
	if !ok {
		return
	}
	pos.X += dx
	pos.Y += dy
}

func (h EnemyHandle) flash() {
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](h.em, h.id); ok {
		flash.Restart()
		return
	}
	ecs.AddComponent(h.em, h.id, &components.FlashEffectComponent{
		Duration:  h.rules.FlashDuration,
		Intensity: 1,
		IsActive:  true,
	})
}

// EnemyWorld 以 ECS 实现 bullet.World
type EnemyWorld struct {
	em    *ecs.EntityManager
	rules *StatusRules
}

var _ bullet.World = (*EnemyWorld)(nil)

// NewEnemyWorld 创建战场查询
func NewEnemyWorld(em *ecs.EntityManager, rules *StatusRules) *EnemyWorld {
	return &EnemyWorld{em: em, rules: rules}
}

// Enemies 存活的敌人，按创建顺序
// 本帧已被击杀或已标记删除的敌人不计入
func (w *EnemyWorld) Enemies() []bullet.Enemy {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](w.em)
	out := make([]bullet.Enemy, 0, len(ids))
	for _, id := range ids {
		if w.em.IsMarkedForDestroy(id) {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
		if health.Killed {
			continue
		}
		out = append(out, NewEnemyHandle(w.em, id, w.rules))
	}
	return out
}

// Handle 获取实体的敌人句柄
func (w *EnemyWorld) Handle(id ecs.EntityID) EnemyHandle {
	return NewEnemyHandle(w.em, id, w.rules)
}
