package components

import "github.com/gonewx/bulletprog/pkg/bullet"

// BulletComponent 将程序化子弹挂到实体上
// 位置和速度的权威数据在 Bullet 中，运动系统每帧同步到 Position/Velocity 组件
type BulletComponent struct {
	Bullet *bullet.Bullet
	// Radius 绘制半径
	Radius float64
	// Outside 上一帧是否已在战场外，穿墙只在进入边界外的那一帧计一次撞墙
	Outside bool
}
