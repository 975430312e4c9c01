package systems

import (
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// LifetimeSystem 删除超过存在时间的实体
type LifetimeSystem struct {
	em *ecs.EntityManager
}

func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{em: em}
}

// Update 到期的子弹走 Bullet.Destroy，由销毁回调删除实体并取消定时器
func (s *LifetimeSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		if !lifetime.Advance(dt) {
			continue
		}

		if bc, ok := ecs.GetComponent[*components.BulletComponent](s.em, id); ok {
			bc.Bullet.Destroy()
			continue
		}
		s.em.DestroyEntity(id)
	}
}
