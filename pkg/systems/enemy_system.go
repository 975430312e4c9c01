package systems

import (
	"log"
	"math"
	"time"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
	"github.com/gonewx/bulletprog/pkg/entities"
)

// EnemySystem 敌人的移动、状态效果和击杀结算
type EnemySystem struct {
	em    *ecs.EntityManager
	arena Arena
	// despawnMargin 敌人超出边界多少像素后删除（不计分）
	despawnMargin    float64
	retargetInterval float64

	// OnKilled 敌人被击杀时调用一次，参数为敌人位置
	OnKilled func(x, y float64)
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(em *ecs.EntityManager, arena Arena, despawnMargin, retargetInterval float64) *EnemySystem {
	return &EnemySystem{
		em:               em,
		arena:            arena,
		despawnMargin:    despawnMargin,
		retargetInterval: retargetInterval,
	}
}

// Update 更新所有敌人
func (s *EnemySystem) Update(dt float64) {
	d := time.Duration(dt * float64(time.Second))
	px, py, hasPlayer := s.playerPosition()

	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		if s.em.IsMarkedForDestroy(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if !health.Killed {
			s.updatePoison(enemy, health, d)
			s.updateSlow(enemy, d)
		}
		if health.Killed {
			s.settleKill(id, pos)
			continue
		}

		enemy.RetargetTimer -= dt
		if enemy.RetargetTimer <= 0 && hasPlayer {
			enemy.RetargetTimer = s.retargetInterval
			enemy.Heading = math.Atan2(py-pos.Y, px-pos.X)
		}

		speed := enemy.BaseSpeed * enemy.SpeedMultiplier()
		vx, vy := math.Cos(enemy.Heading)*speed, math.Sin(enemy.Heading)*speed
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			vel.VX, vel.VY = vx, vy
		}
		pos.X += vx * dt
		pos.Y += vy * dt

		if s.outOfBounds(pos) {
			s.em.DestroyEntity(id)
		}
	}
}

// updatePoison 推进中毒：每个间隔直接扣一次生命值（不经过护盾）
func (s *EnemySystem) updatePoison(enemy *components.EnemyComponent, health *components.HealthComponent, d time.Duration) {
	p := &enemy.Poison
	if !p.Active {
		return
	}
	p.SinceTick += d
	p.Remaining -= d
	for p.Interval > 0 && p.SinceTick >= p.Interval && !health.Killed {
		p.SinceTick -= p.Interval
		health.CurrentHealth -= p.Damage
		if health.CurrentHealth <= 0 {
			health.CurrentHealth = 0
			health.Killed = true
		}
	}
	if p.Remaining <= 0 {
		*p = components.PoisonStatus{}
	}
}

func (s *EnemySystem) updateSlow(enemy *components.EnemyComponent, d time.Duration) {
	if !enemy.Slow.Active {
		return
	}
	enemy.Slow.Remaining -= d
	if enemy.Slow.Remaining <= 0 {
		enemy.Slow = components.SlowStatus{}
	}
}

// settleKill 计分、死亡效果、删除实体
func (s *EnemySystem) settleKill(id ecs.EntityID, pos *components.PositionComponent) {
	if _, err := entities.NewEffectRing(s.em, entities.DeathRing, pos.X, pos.Y); err != nil {
		log.Printf("[EnemySystem] 死亡效果创建失败: %v", err)
	}
	if s.OnKilled != nil {
		s.OnKilled(pos.X, pos.Y)
	}
	s.em.DestroyEntity(id)
}

func (s *EnemySystem) outOfBounds(pos *components.PositionComponent) bool {
	m := s.despawnMargin
	return pos.X < -m || pos.X > s.arena.Width+m || pos.Y < -m || pos.Y > s.arena.Height+m
}

// playerPosition 玩家位置
func (s *EnemySystem) playerPosition() (float64, float64, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		return pos.X, pos.Y, true
	}
	return 0, 0, false
}
