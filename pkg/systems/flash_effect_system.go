package systems

import (
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// FlashEffectSystem 推进受击闪白，播放完后移除组件
type FlashEffectSystem struct {
	em *ecs.EntityManager
}

func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{em: em}
}

func (s *FlashEffectSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.em) {
		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.em, id)
		if !flash.IsActive {
			continue
		}
		flash.Elapsed += dt
		if flash.Done() {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.em, id)
		}
	}
}
