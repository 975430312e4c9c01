package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
	"github.com/gonewx/bulletprog/pkg/utils"
)

var (
	backgroundColor = color.RGBA{0x10, 0x12, 0x1c, 0xFF}
	gridColor       = color.RGBA{0x1c, 0x20, 0x30, 0xFF}
	playerColor     = color.RGBA{0x4d, 0xa6, 0xff, 0xFF}
	enemyColor      = color.RGBA{0xe0, 0x4f, 0x4f, 0xFF}
	shieldColor     = color.RGBA{0x66, 0xcc, 0xff, 0xFF}
	poisonColor     = color.RGBA{0x7c, 0xd9, 0x3c, 0xFF}
	slowColor       = color.RGBA{0x8a, 0x8a, 0xff, 0xFF}
	bulletColor     = color.RGBA{0xff, 0xe0, 0x66, 0xFF}
	bounceColor     = color.RGBA{0xff, 0xff, 0xff, 0xFF}
)

// gridSpacing 背景网格间距
const gridSpacing = 64

func (s *GameScene) drawArena(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	cfg := s.battle.Config().World
	w, h := float32(cfg.Width), float32(cfg.Height)
	for x := float32(gridSpacing); x < w; x += gridSpacing {
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	for y := float32(gridSpacing); y < h; y += gridSpacing {
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor, false)
	}
}

// drawEffects 圆环和拖尾
func (s *GameScene) drawEffects(screen *ebiten.Image) {
	em := s.battle.EntityManager()

	for _, id := range ecs.GetEntitiesWith2[*components.TrailComponent, *components.PositionComponent](em) {
		trail, _ := ecs.GetComponent[*components.TrailComponent](em, id)
		n := len(trail.Points)
		for i := 1; i < n; i++ {
			a, b := trail.Points[i-1], trail.Points[i]
			alpha := float64(i) / float64(n)
			vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]),
				2, withAlpha(trail.Color, alpha*0.6), true)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EffectRingComponent, *components.PositionComponent](em) {
		ring, _ := ecs.GetComponent[*components.EffectRingComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		r, alpha := utils.RingFrame(ring.StartRadius, ring.EndRadius, ring.InitialAlpha, ring.Progress())
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(r), 2,
			withAlpha(ring.Color, alpha), true)
	}
}

func (s *GameScene) drawEnemies(screen *ebiten.Image) {
	em := s.battle.EntityManager()
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](em)
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		body := enemyColor
		switch {
		case enemy.Poison.Active:
			body = poisonColor
		case enemy.Slow.Active:
			body = slowColor
		}
		left, top, _, _ := col.Bounds(pos.X, pos.Y)
		vector.DrawFilledRect(screen, float32(left), float32(top), float32(col.Width), float32(col.Height), body, false)

		if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, id); ok {
			if a := flash.Alpha(); a > 0 {
				vector.DrawFilledRect(screen, float32(left), float32(top), float32(col.Width), float32(col.Height),
					withAlpha(color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, a), false)
			}
		}
		if enemy.Shield.Active {
			r := math.Max(col.Width, col.Height)*0.5 + 4
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(r), 2, shieldColor, true)
		}
	}
}

func (s *GameScene) drawBullets(screen *ebiten.Image) {
	radius := float32(s.battle.Config().Bullet.Radius)
	for _, b := range s.battle.Bullets() {
		c := bulletColor
		if b.Bounce {
			c = bounceColor
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), radius, c, true)
	}
}

func (s *GameScene) drawPlayer(screen *ebiten.Image) {
	x, y, ok := s.battle.PlayerPosition()
	if !ok {
		return
	}
	size := float32(s.battle.Config().Player.Size)
	vector.DrawFilledRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, playerColor, false)
	// 枪口朝右
	muzzle := float32(s.battle.Config().Player.MuzzleOffset)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x)+muzzle, float32(y), 2, playerColor, false)
}

// withAlpha 按 [0, 1] 的不透明度生成预乘 alpha 颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(alpha, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}
