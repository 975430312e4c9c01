package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// EnemySpec 敌人参数
type EnemySpec struct {
	Speed        float64
	Health       float64
	Size         float64
	Shielded     bool
	ShieldHealth float64
}

// NewEnemyEntity 创建敌人实体，初始朝向 (targetX, targetY)
//
// 参数:
//   - em: 实体管理器
//   - spec: 敌人参数
//   - x, y: 出生位置
//   - targetX, targetY: 初始移动目标（通常是玩家位置）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID
//   - error: 参数非法时返回错误
func NewEnemyEntity(em *ecs.EntityManager, spec EnemySpec, x, y, targetX, targetY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Health <= 0 {
		return 0, fmt.Errorf("enemy health must be positive, got %.1f", spec.Health)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})

	angle := math.Atan2(targetY-y, targetX-x)
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: math.Cos(angle) * spec.Speed,
		VY: math.Sin(angle) * spec.Speed,
	})

	enemy := &components.EnemyComponent{BaseSpeed: spec.Speed, Heading: angle}
	if spec.Shielded {
		enemy.Shield = components.ShieldStatus{Active: true, Health: spec.ShieldHealth}
	}
	ecs.AddComponent(em, id, enemy)
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: spec.Health,
		MaxHealth:     spec.Health,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: spec.Size, Height: spec.Size})
	return id, nil
}
