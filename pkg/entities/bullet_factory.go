package entities

import (
	"fmt"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// BulletSpec 子弹实体的表现和生命周期参数
type BulletSpec struct {
	Radius      float64 // 碰撞和绘制半径
	MaxLifetime float64 // 秒
}

// NewBulletEntity 为运行中的子弹创建实体
// 位置、速度由 Bullet 持有，实体的 Position/Velocity 每帧由运动系统同步
//
// 参数:
//   - em: 实体管理器
//   - b: 已创建但尚未启动的子弹
//   - spec: 半径和最大生命周期
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
//   - error: 参数非法时返回错误
func NewBulletEntity(em *ecs.EntityManager, b *bullet.Bullet, spec BulletSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if b == nil {
		return 0, fmt.Errorf("bullet cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: b.X, Y: b.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: b.VX, VY: b.VY})
	ecs.AddComponent(em, id, &components.BulletComponent{Bullet: b, Radius: spec.Radius})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  spec.Radius * 2,
		Height: spec.Radius * 2,
	})
	if spec.MaxLifetime > 0 {
		ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: spec.MaxLifetime})
	}
	return id, nil
}
