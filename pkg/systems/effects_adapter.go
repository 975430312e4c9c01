package systems

import (
	"fmt"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/ecs"
	"github.com/gonewx/bulletprog/pkg/entities"
)

// EffectsAdapter 以实体实现 bullet.Effects
type EffectsAdapter struct {
	em *ecs.EntityManager
}

var _ bullet.Effects = (*EffectsAdapter)(nil)

// NewEffectsAdapter 创建效果适配器
func NewEffectsAdapter(em *ecs.EntityManager) *EffectsAdapter {
	return &EffectsAdapter{em: em}
}

// Play 在 (x, y) 创建一次性圆环
func (a *EffectsAdapter) Play(kind bullet.EffectKind, x, y float64) error {
	style, ok := entities.RingStyleFor(kind)
	if !ok {
		return fmt.Errorf("no ring for effect %s", kind)
	}
	_, err := entities.NewEffectRing(a.em, style, x, y)
	return err
}

// Follow 创建跟随子弹的拖尾，release 删除拖尾实体
func (a *EffectsAdapter) Follow(kind bullet.EffectKind, b *bullet.Bullet) (func(), error) {
	id, err := entities.NewTrail(a.em, kind, b)
	if err != nil {
		return nil, err
	}
	return func() { a.em.DestroyEntity(id) }, nil
}
