package systems

import (
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// EffectSystem 推进圆环动画并记录拖尾轨迹
// 圆环的删除交给 LifetimeSystem，拖尾随子弹销毁释放
type EffectSystem struct {
	em *ecs.EntityManager
}

// NewEffectSystem 创建效果系统
func NewEffectSystem(em *ecs.EntityManager) *EffectSystem {
	return &EffectSystem{em: em}
}

// Update 更新所有效果
func (s *EffectSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.EffectRingComponent](s.em) {
		ring, _ := ecs.GetComponent[*components.EffectRingComponent](s.em, id)
		ring.Elapsed += dt
	}

	for _, id := range ecs.GetEntitiesWith2[*components.TrailComponent, *components.PositionComponent](s.em) {
		trail, _ := ecs.GetComponent[*components.TrailComponent](s.em, id)
		if trail.Target == nil || !trail.Target.Alive() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X, pos.Y = trail.Target.X, trail.Target.Y
		trail.Push(pos.X, pos.Y)
	}
}
