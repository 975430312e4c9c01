package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/ecs"
	"github.com/gonewx/bulletprog/pkg/entities"
)

// BulletLimits 子弹数量上限
type BulletLimits struct {
	MaxLive    int // 场上子弹总数
	MaxPerShot int // 同一次发射及其后代
}

// BulletSpawner 以实体实现 bullet.Spawner
// 子弹销毁时通过 OnDestroy 删除实体并归还计数
type BulletSpawner struct {
	em     *ecs.EntityManager
	spec   entities.BulletSpec
	limits BulletLimits

	live    int
	perShot map[string]int
}

var _ bullet.Spawner = (*BulletSpawner)(nil)

// NewBulletSpawner 创建子弹接入器
func NewBulletSpawner(em *ecs.EntityManager, spec entities.BulletSpec, limits BulletLimits) *BulletSpawner {
	return &BulletSpawner{
		em:      em,
		spec:    spec,
		limits:  limits,
		perShot: make(map[string]int),
	}
}

// Admit 检查再接入 n 颗子弹是否超出上限
func (s *BulletSpawner) Admit(shotID string, n int) error {
	if s.limits.MaxLive > 0 && s.live+n > s.limits.MaxLive {
		return fmt.Errorf("%w: live=%d max=%d", bullet.ErrPopulationLimit, s.live, s.limits.MaxLive)
	}
	if s.limits.MaxPerShot > 0 && s.perShot[shotID]+n > s.limits.MaxPerShot {
		return fmt.Errorf("%w: shot %s has %d", bullet.ErrPopulationLimit, shotID, s.perShot[shotID])
	}
	return nil
}

// Spawn 为子弹创建实体
func (s *BulletSpawner) Spawn(b *bullet.Bullet) error {
	if err := s.Admit(b.ShotID, 1); err != nil {
		return err
	}

	id, err := entities.NewBulletEntity(s.em, b, s.spec)
	if err != nil {
		return err
	}

	s.live++
	s.perShot[b.ShotID]++
	shotID := b.ShotID
	b.OnDestroy(func() {
		s.live--
		if s.perShot[shotID]--; s.perShot[shotID] <= 0 {
			delete(s.perShot, shotID)
		}
		s.em.DestroyEntity(id)
	})

	log.Printf("[BulletSpawner] 子弹 %d 接入 (shot=%s gen=%d live=%d)", id, shotID, b.Generation, s.live)
	return nil
}

// Live 场上存活的子弹数
func (s *BulletSpawner) Live() int { return s.live }

// ShotLive 某次发射的存活子弹数
func (s *BulletSpawner) ShotLive(shotID string) int { return s.perShot[shotID] }
