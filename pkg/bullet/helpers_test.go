package bullet_test

import (
	"testing"
	"time"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/timer"
)

// fakeEnemy 记录所有受到的影响
type fakeEnemy struct {
	x, y        float64
	damage      float64
	hits        int
	shieldHits  int
	poison      float64
	slowMult    float64
	slowFor     time.Duration
	nudgeX      float64
	nudgeY      float64
	nudgeCalled int
}

func (e *fakeEnemy) Position() (float64, float64) { return e.x, e.y }

func (e *fakeEnemy) TakeDamage(amount float64, shieldBreak bool) {
	e.damage += amount
	e.hits++
	if shieldBreak {
		e.shieldHits++
	}
}

func (e *fakeEnemy) ApplyPoison(amount float64) { e.poison += amount }

func (e *fakeEnemy) ApplySlow(multiplier float64, duration time.Duration) {
	e.slowMult = multiplier
	e.slowFor = duration
}

func (e *fakeEnemy) Nudge(dx, dy float64) {
	e.nudgeX += dx
	e.nudgeY += dy
	e.nudgeCalled++
}

type fakeWorld struct {
	enemies []*fakeEnemy
}

func (w *fakeWorld) Enemies() []bullet.Enemy {
	out := make([]bullet.Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		out = append(out, e)
	}
	return out
}

// recordingSpawner 记录接入的子弹，limit > 0 时超出返回 ErrPopulationLimit
type recordingSpawner struct {
	spawned []*bullet.Bullet
	limit   int
}

func (s *recordingSpawner) Admit(_ string, n int) error {
	if s.limit > 0 && len(s.spawned)+n > s.limit {
		return bullet.ErrPopulationLimit
	}
	return nil
}

func (s *recordingSpawner) Spawn(b *bullet.Bullet) error {
	if s.limit > 0 && len(s.spawned) >= s.limit {
		return bullet.ErrPopulationLimit
	}
	s.spawned = append(s.spawned, b)
	return nil
}

func (s *recordingSpawner) alive() int {
	n := 0
	for _, b := range s.spawned {
		if b.Alive() {
			n++
		}
	}
	return n
}

// testEnv 测试用运行环境
type testEnv struct {
	env     *bullet.Env
	world   *fakeWorld
	spawner *recordingSpawner
	timers  *timer.Scheduler
}

func newTestEnv(enemies ...*fakeEnemy) *testEnv {
	te := &testEnv{
		world:   &fakeWorld{enemies: enemies},
		spawner: &recordingSpawner{},
		timers:  timer.NewScheduler(),
	}
	te.env = &bullet.Env{
		World:   te.world,
		Spawner: te.spawner,
		Timers:  te.timers,
		Tuning:  bullet.DefaultTuning(),
	}
	return te
}

// fire 在原点朝右发射
func (te *testEnv) fire(t *testing.T, text string) *bullet.Bullet {
	t.Helper()
	b, err := bullet.Fire(te.env, mustParse(t, text), 0, 0, 0)
	if err != nil {
		t.Fatalf("Fire(%q) error: %v", text, err)
	}
	return b
}

func mustParse(t *testing.T, text string) program.Program {
	t.Helper()
	p, err := program.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return p
}

func executedEqual(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
