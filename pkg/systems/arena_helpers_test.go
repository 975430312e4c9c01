package systems

import (
	"testing"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
	"github.com/gonewx/bulletprog/pkg/entities"
	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/timer"
)

// testArena 100x100 的战场，子弹出界 50 像素后删除
type testArena struct {
	em      *ecs.EntityManager
	timers  *timer.Scheduler
	spawner *BulletSpawner
	world   *EnemyWorld
	env     *bullet.Env
	arena   Arena
}

func newTestArena(limits BulletLimits) *testArena {
	em := ecs.NewEntityManager()
	ta := &testArena{
		em:      em,
		timers:  timer.NewScheduler(),
		spawner: NewBulletSpawner(em, entities.BulletSpec{Radius: 5, MaxLifetime: 10}, limits),
		world:   NewEnemyWorld(em, DefaultStatusRules()),
		arena:   Arena{Width: 100, Height: 100, BulletMargin: 50},
	}
	ta.env = &bullet.Env{
		World:   ta.world,
		Spawner: ta.spawner,
		Timers:  ta.timers,
		Effects: NewEffectsAdapter(em),
		Tuning:  bullet.DefaultTuning(),
	}
	return ta
}

func (ta *testArena) fire(t *testing.T, text string, x, y, heading float64) *bullet.Bullet {
	t.Helper()
	p, err := program.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	b, err := bullet.Fire(ta.env, p, x, y, heading)
	if err != nil {
		t.Fatalf("Fire(%q) error: %v", text, err)
	}
	return b
}

func (ta *testArena) enemy(t *testing.T, spec entities.EnemySpec, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(ta.em, spec, x, y, x-1, y)
	if err != nil {
		t.Fatalf("NewEnemyEntity() error: %v", err)
	}
	return id
}

// bulletEntity 子弹对应的实体
func (ta *testArena) bulletEntity(b *bullet.Bullet) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](ta.em) {
		bc, _ := ecs.GetComponent[*components.BulletComponent](ta.em, id)
		if bc.Bullet == b {
			return id, true
		}
	}
	return 0, false
}

func countWith[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if !em.IsMarkedForDestroy(id) {
			n++
		}
	}
	return n
}

var basicEnemy = entities.EnemySpec{Speed: 50, Health: 1, Size: 16}
