// Package condition 评估 IF 节点的战场条件
//
// 评估是快照的纯函数：同一快照总是得到相同结果，未知动作一律视为 false。
package condition

import (
	"math"

	"github.com/gonewx/bulletprog/pkg/program"
)

const (
	// NearDistance enemy-near / enemy-far 的距离阈值
	NearDistance = 100.0
	// ManyThreshold enemy-many 的敌人数量阈值
	ManyThreshold = 3
)

// Point 战场上的一个坐标
type Point struct {
	X, Y float64
}

// Snapshot 评估时刻的战场快照
type Snapshot struct {
	BulletX, BulletY float64
	Enemies          []Point
}

// Distance 两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Evaluate 评估 IF 节点
// 非 IF 节点和未知动作返回 false，不会 panic
func Evaluate(node program.Node, s Snapshot) bool {
	if node.Kind() != program.KindIf {
		return false
	}

	switch node.Action() {
	case program.ActionEnemyNear:
		for _, e := range s.Enemies {
			if Distance(s.BulletX, s.BulletY, e.X, e.Y) < NearDistance {
				return true
			}
		}
		return false

	case program.ActionEnemyFar:
		// 没有敌人时为真
		for _, e := range s.Enemies {
			if Distance(s.BulletX, s.BulletY, e.X, e.Y) <= NearDistance {
				return false
			}
		}
		return true

	case program.ActionEnemyMany:
		return len(s.Enemies) >= ManyThreshold

	case program.ActionNoEnemy:
		return len(s.Enemies) == 0

	default:
		return false
	}
}
