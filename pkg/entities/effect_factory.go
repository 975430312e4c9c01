package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// RingStyle 扩散圆环的外观
type RingStyle struct {
	Label       string
	StartRadius float64
	EndRadius   float64
	Duration    float64 // 秒
	Color       color.RGBA
	Alpha       float64
}

// ringStyles 子弹效果对应的圆环
var ringStyles = map[bullet.EffectKind]RingStyle{
	bullet.EffectMuzzle:  {Label: "muzzle", StartRadius: 8, EndRadius: 16, Duration: 0.1, Color: color.RGBA{0xFF, 0xFF, 0x00, 0xFF}, Alpha: 0.8},
	bullet.EffectSplit:   {Label: "split", StartRadius: 15, EndRadius: 30, Duration: 0.3, Color: color.RGBA{0x00, 0xFF, 0xFF, 0xFF}, Alpha: 0.8},
	bullet.EffectExplode: {Label: "explode", StartRadius: 50, EndRadius: 100, Duration: 0.5, Color: color.RGBA{0xFF, 0x66, 0x00, 0xFF}, Alpha: 0.7},
	bullet.EffectBounce:  {Label: "bounce", StartRadius: 10, EndRadius: 15, Duration: 0.15, Color: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, Alpha: 0.8},
	bullet.EffectHit:     {Label: "hit", StartRadius: 12, EndRadius: 24, Duration: 0.2, Color: color.RGBA{0xFF, 0x44, 0x44, 0xFF}, Alpha: 0.9},
	bullet.EffectSpeedUp: {Label: "speed-up", StartRadius: 10, EndRadius: 20, Duration: 0.2, Color: color.RGBA{0x00, 0xFF, 0x00, 0xFF}, Alpha: 0.6},
}

// DeathRing 敌人死亡的圆环
var DeathRing = RingStyle{Label: "death", StartRadius: 20, EndRadius: 40, Duration: 0.3, Color: color.RGBA{0xFF, 0x66, 0x00, 0xFF}, Alpha: 0.7}

// GameOverRing 游戏结束时碰撞点的圆环
var GameOverRing = RingStyle{Label: "game-over", StartRadius: 10, EndRadius: 60, Duration: 0.7, Color: color.RGBA{0xFF, 0x00, 0x00, 0xFF}, Alpha: 0.8}

// trailColors 跟随拖尾的颜色
var trailColors = map[bullet.EffectKind]color.RGBA{
	bullet.EffectHomingTrail: {0xFF, 0x00, 0xFF, 0xFF},
	bullet.EffectSpeedTrail:  {0x00, 0xFF, 0x00, 0xFF},
}

// RingStyleFor 子弹效果对应的圆环外观
func RingStyleFor(kind bullet.EffectKind) (RingStyle, bool) {
	s, ok := ringStyles[kind]
	return s, ok
}

// NewEffectRing 创建一次性扩散圆环，到期后由生命周期系统删除
func NewEffectRing(em *ecs.EntityManager, style RingStyle, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if style.Duration <= 0 {
		return 0, fmt.Errorf("ring %s: duration must be positive", style.Label)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.EffectRingComponent{
		Label:        style.Label,
		StartRadius:  style.StartRadius,
		EndRadius:    style.EndRadius,
		Duration:     style.Duration,
		Color:        style.Color,
		InitialAlpha: style.Alpha,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: style.Duration})
	return id, nil
}

// NewTrail 创建跟随子弹的拖尾
func NewTrail(em *ecs.EntityManager, kind bullet.EffectKind, b *bullet.Bullet) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	c, ok := trailColors[kind]
	if !ok {
		return 0, fmt.Errorf("effect %s is not a trail", kind)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: b.X, Y: b.Y})
	ecs.AddComponent(em, id, &components.TrailComponent{
		Kind:      kind,
		Target:    b,
		Color:     c,
		MaxPoints: 12,
	})
	return id, nil
}
