package systems

import (
	"log"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// LogOutputFrameInterval 日志输出间隔（每N帧输出一次）
const LogOutputFrameInterval = 100

// BulletProgramSystem 每帧驱动子弹程序：连续属性（追踪、磁力）和程序评估
type BulletProgramSystem struct {
	em              *ecs.EntityManager
	logFrameCounter int
}

// NewBulletProgramSystem 创建子弹程序系统
func NewBulletProgramSystem(em *ecs.EntityManager) *BulletProgramSystem {
	return &BulletProgramSystem{em: em}
}

// Update 更新所有子弹
// 评估中分裂产生的子弹下一帧才会更新
func (s *BulletProgramSystem) Update(dt float64) {
	ids := ecs.GetEntitiesWith1[*components.BulletComponent](s.em)

	// 只在有子弹时输出日志（避免每帧都打印）
	if len(ids) > 0 {
		s.logFrameCounter++
		if s.logFrameCounter%LogOutputFrameInterval == 1 {
			log.Printf("[BulletProgramSystem] 更新 %d 颗子弹", len(ids))
		}
	}

	for _, id := range ids {
		bc, _ := ecs.GetComponent[*components.BulletComponent](s.em, id)
		if bc.Bullet.Alive() {
			bc.Bullet.Update()
		}
	}
}
