package systems

import (
	"math"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// Arena 战场边界
type Arena struct {
	Width, Height float64
	// BulletMargin 子弹超出边界多少像素后删除
	BulletMargin float64
}

// inside 点是否在战场内（含边界）
func (a Arena) inside(x, y float64) bool {
	return x >= 0 && x <= a.Width && y >= 0 && y <= a.Height
}

// MovementSystem 子弹的移动、撞墙和出界
type MovementSystem struct {
	em    *ecs.EntityManager
	arena Arena
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, arena Arena) *MovementSystem {
	return &MovementSystem{em: em, arena: arena}
}

// Update 移动所有子弹
//
// 子弹从场内越过边界时调用 OnWallContact：
//   - 可反弹的子弹被反射回场内
//   - 其余子弹继续飞行，超出边界 BulletMargin 后销毁
func (s *MovementSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.em) {
		bc, _ := ecs.GetComponent[*components.BulletComponent](s.em, id)
		b := bc.Bullet
		if !b.Alive() {
			continue
		}

		b.X += b.VX * dt
		b.Y += b.VY * dt

		if s.arena.inside(b.X, b.Y) {
			bc.Outside = false
		} else if !bc.Outside {
			b.OnWallContact()
			if b.Alive() && b.Bounce {
				s.reflect(b)
			} else {
				bc.Outside = true
			}
		}

		if b.Alive() && s.outOfBounds(b) {
			b.Destroy()
		}
		if !b.Alive() {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X, pos.Y = b.X, b.Y
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			vel.VX, vel.VY = b.VX, b.VY
		}
	}
}

// reflect 反射越界的速度分量并把子弹夹回边界上
func (s *MovementSystem) reflect(b *bullet.Bullet) {
	if b.X < 0 {
		b.X = 0
		b.VX = math.Abs(b.VX)
	} else if b.X > s.arena.Width {
		b.X = s.arena.Width
		b.VX = -math.Abs(b.VX)
	}
	if b.Y < 0 {
		b.Y = 0
		b.VY = math.Abs(b.VY)
	} else if b.Y > s.arena.Height {
		b.Y = s.arena.Height
		b.VY = -math.Abs(b.VY)
	}
}

func (s *MovementSystem) outOfBounds(b *bullet.Bullet) bool {
	m := s.arena.BulletMargin
	return b.X < -m || b.X > s.arena.Width+m || b.Y < -m || b.Y > s.arena.Height+m
}
