package entities

import (
	"fmt"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
func NewPlayerEntity(em *ecs.EntityManager, x, y, speed, size, fireCooldown float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:        speed,
		FireCooldown: fireCooldown,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: size, Height: size})
	return id, nil
}
