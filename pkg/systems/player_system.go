package systems

import (
	"math"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// PlayerControls 本帧的玩家输入
type PlayerControls struct {
	MoveX, MoveY float64 // -1..1
	Fire         bool
}

// PlayerSystem 玩家移动和发射冷却
type PlayerSystem struct {
	em       *ecs.EntityManager
	arena    Arena
	controls PlayerControls

	// OnFire 冷却结束且按下发射时调用，参数为玩家位置
	OnFire func(x, y float64)
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, arena Arena) *PlayerSystem {
	return &PlayerSystem{em: em, arena: arena}
}

// SetControls 设置本帧输入
func (s *PlayerSystem) SetControls(c PlayerControls) {
	s.controls = c
}

// Update 移动玩家并处理发射
func (s *PlayerSystem) Update(dt float64) {
	ids := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	for _, id := range ids {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		if player.Hit {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)

		dx, dy := s.controls.MoveX, s.controls.MoveY
		// 斜向移动不加速
		if l := math.Hypot(dx, dy); l > 1 {
			dx, dy = dx/l, dy/l
		}
		pos.X = clamp(pos.X+dx*player.Speed*dt, col.Width/2, s.arena.Width-col.Width/2)
		pos.Y = clamp(pos.Y+dy*player.Speed*dt, col.Height/2, s.arena.Height-col.Height/2)

		if player.CooldownRemaining > 0 {
			player.CooldownRemaining -= dt
		}
		if s.controls.Fire && player.CooldownRemaining <= 0 {
			player.CooldownRemaining = player.FireCooldown
			if s.OnFire != nil {
				s.OnFire(pos.X, pos.Y)
			}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
