package components

import (
	"image/color"

	"github.com/gonewx/bulletprog/pkg/bullet"
)

// EffectRingComponent 一次性扩散圆环（分裂、爆炸、命中、反弹、枪口闪光、敌人死亡）
// 纯表现，不参与碰撞
type EffectRingComponent struct {
	Label        string
	StartRadius  float64
	EndRadius    float64
	Duration     float64 // 秒
	Elapsed      float64 // 秒
	Color        color.RGBA
	InitialAlpha float64
}

// Progress 动画进度 [0, 1]
func (c *EffectRingComponent) Progress() float64 {
	if c.Duration <= 0 {
		return 1
	}
	p := c.Elapsed / c.Duration
	if p > 1 {
		return 1
	}
	return p
}

// TrailComponent 跟随子弹的拖尾（追踪、加速）
// 子弹销毁时释放函数删除该实体
type TrailComponent struct {
	Kind   bullet.EffectKind
	Target *bullet.Bullet
	Color  color.RGBA
	// Points 最近的位置采样，最新的在末尾
	Points    [][2]float64
	MaxPoints int
}

// Push 记录一个采样点
func (c *TrailComponent) Push(x, y float64) {
	c.Points = append(c.Points, [2]float64{x, y})
	if c.MaxPoints > 0 && len(c.Points) > c.MaxPoints {
		c.Points = c.Points[len(c.Points)-c.MaxPoints:]
	}
}
