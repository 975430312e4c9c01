package bullet_test

import (
	"math"
	"testing"
	"time"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/program"
)

// TestImmediateDestroy 立即触发的销毁在发射时完成
func TestImmediateDestroy(t *testing.T) {
	te := newTestEnv()
	b := te.fire(t, "when:immediate, do:destroy")

	if b.Alive() {
		t.Fatal("bullet should be destroyed on fire")
	}
	if !executedEqual(b.Executed(), []int{1}) {
		t.Errorf("Executed() = %v, want [1]", b.Executed())
	}
	if len(te.spawner.spawned) != 1 {
		t.Errorf("spawned %d bullets, want 1", len(te.spawner.spawned))
	}
}

// TestTimerExplode timer-2 到期后爆炸，只伤害半径内的敌人
func TestTimerExplode(t *testing.T) {
	near := &fakeEnemy{x: 30, y: 40}
	far := &fakeEnemy{x: 120, y: 0}
	te := newTestEnv(near, far)
	b := te.fire(t, "when:timer-2, do:explode")

	if b.PendingTimers() != 1 {
		t.Fatalf("PendingTimers() = %d, want 1", b.PendingTimers())
	}

	te.timers.Advance(1999 * time.Millisecond)
	if !b.Alive() || b.IsExecuted(1) {
		t.Fatal("explode fired before 2000ms")
	}

	te.timers.Advance(time.Millisecond)
	if b.Alive() {
		t.Error("bullet should self-destroy after explode")
	}
	if near.damage != 2 {
		t.Errorf("near enemy damage = %v, want 2", near.damage)
	}
	if far.hits != 0 {
		t.Errorf("far enemy hit %d times, want 0", far.hits)
	}
}

// TestExplodeUsesHighDamage 爆炸伤害基于高威力后的伤害值
func TestExplodeUsesHighDamage(t *testing.T) {
	e := &fakeEnemy{x: 0, y: 79}
	te := newTestEnv(e)
	te.fire(t, "property:high-damage, when:immediate, do:explode")

	if e.damage != 4 {
		t.Errorf("damage = %v, want 4", e.damage)
	}
}

// TestHomingTimerNearSplit 计时器触发时敌人不在附近则等待，靠近后下一帧分裂
func TestHomingTimerNearSplit(t *testing.T) {
	e := &fakeEnemy{x: 500, y: 0}
	te := newTestEnv(e)
	b := te.fire(t, "property:homing, when:timer-1, if:enemy-near, do:split")

	te.timers.Advance(TimerShort)
	if !b.Condition(1) {
		t.Fatal("timer-1 should be latched after 1000ms")
	}
	if b.IsExecuted(3) || !b.Alive() {
		t.Fatal("split must wait for enemy-near")
	}

	b.X = 450
	b.Update()
	if b.Alive() {
		t.Fatal("bullet should split once the enemy is near")
	}
	if len(te.spawner.spawned) != 3 {
		t.Fatalf("spawned %d bullets, want parent + 2 children", len(te.spawner.spawned))
	}

	parentHeading := b.Heading()
	for i, c := range te.spawner.spawned[1:] {
		if c.ShotID != b.ShotID {
			t.Errorf("child %d ShotID = %s, want %s", i, c.ShotID, b.ShotID)
		}
		if c.Generation != 1 {
			t.Errorf("child %d Generation = %d, want 1", i, c.Generation)
		}
		if c.X != b.X || c.Y != b.Y {
			t.Errorf("child %d at (%v,%v), want parent position", i, c.X, c.Y)
		}
		if len(c.Executed()) != 0 {
			t.Errorf("child %d starts with executed %v", i, c.Executed())
		}
		if !c.Flags.Homing {
			t.Errorf("child %d lost homing", i)
		}
		diff := math.Abs(c.Heading() - parentHeading)
		if math.Abs(diff-bullet.SplitAngle) > 1e-9 {
			t.Errorf("child %d heading offset = %v, want %v", i, diff, bullet.SplitAngle)
		}
	}
}

// TimerShort timer-1 的延迟，测试中直接使用
const TimerShort = bullet.TimerShortDelay

// TestDestroyCancelsTimers 销毁时同步取消所有定时器
func TestDestroyCancelsTimers(t *testing.T) {
	e := &fakeEnemy{x: 10, y: 0}
	te := newTestEnv(e)
	b := te.fire(t, "when:timer-1, do:speed-up, when:timer-2, do:explode")

	if b.PendingTimers() != 2 {
		t.Fatalf("PendingTimers() = %d, want 2", b.PendingTimers())
	}

	b.Destroy()
	if b.PendingTimers() != 0 || te.timers.Pending() != 0 {
		t.Fatalf("timers still pending after destroy: bullet=%d scheduler=%d", b.PendingTimers(), te.timers.Pending())
	}

	te.timers.Advance(5 * time.Second)
	if len(b.Executed()) != 0 {
		t.Errorf("executed %v after destroy", b.Executed())
	}
	if e.hits != 0 {
		t.Error("explode ran after destroy")
	}

	// 重复销毁无效
	b.Destroy()
}

// TestMultiChain 多条 WHEN 链独立生效
func TestMultiChain(t *testing.T) {
	e := &fakeEnemy{x: 200, y: 0}
	te := newTestEnv(e)
	b := te.fire(t, "when:immediate, do:speed-up, when:enemy-contact, do:explode")

	if !b.IsExecuted(1) {
		t.Fatal("speed-up should execute immediately")
	}
	if math.Abs(b.Speed-300) > 1e-9 {
		t.Errorf("Speed = %v, want 300", b.Speed)
	}
	if b.IsExecuted(3) {
		t.Fatal("explode must wait for enemy contact")
	}

	b.X = 190
	b.OnEnemyContact(e)
	if b.Alive() {
		t.Error("bullet should explode on contact")
	}
	// 接触伤害 1 + 爆炸伤害 2
	if e.damage != 3 {
		t.Errorf("damage = %v, want 3", e.damage)
	}
}

// TestDoAtMostOnce 每个 DO 最多执行一次
func TestDoAtMostOnce(t *testing.T) {
	te := newTestEnv()
	b := te.fire(t, "when:immediate, do:speed-up")

	for i := 0; i < 5; i++ {
		b.Update()
	}
	if math.Abs(b.Speed-300) > 1e-9 {
		t.Errorf("Speed = %v after repeated evaluation, want 300", b.Speed)
	}
}

// TestIfChainRequiresAll DO 之前的所有 IF 都必须成立
func TestIfChainRequiresAll(t *testing.T) {
	tests := []struct {
		name    string
		enemies []*fakeEnemy
		want    bool
	}{
		{
			name:    "数量够但不近",
			enemies: []*fakeEnemy{{x: 500}, {x: 600}, {x: 700}},
			want:    false,
		},
		{
			name:    "近但数量不够",
			enemies: []*fakeEnemy{{x: 10}},
			want:    false,
		},
		{
			name:    "两者都满足",
			enemies: []*fakeEnemy{{x: 10}, {x: 600}, {x: 700}},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEnv(tt.enemies...)
			b := te.fire(t, "when:immediate, if:enemy-many, if:enemy-near, do:destroy")
			if got := b.IsExecuted(3); got != tt.want {
				t.Errorf("destroy executed = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDoWithoutWhenNeverRuns 前面没有 WHEN 的 DO 不会执行
func TestDoWithoutWhenNeverRuns(t *testing.T) {
	te := newTestEnv()
	b := te.fire(t, "do:destroy, when:immediate")
	b.Update()
	if !b.Alive() || b.IsExecuted(0) {
		t.Error("DO with no preceding WHEN executed")
	}
}

// TestPropertyDoesNotBreakChain PROPERTY 节点不影响门控
func TestPropertyDoesNotBreakChain(t *testing.T) {
	te := newTestEnv()
	b := te.fire(t, "when:immediate, property:poison, do:destroy")
	if b.Alive() {
		t.Error("PROPERTY between WHEN and DO blocked execution")
	}
	if !b.Flags.Poison {
		t.Error("poison flag not set")
	}
}

// TestPenetrate 穿透子弹命中后置位 enemy-contact 但不立即评估，同一敌人只结算一次
func TestPenetrate(t *testing.T) {
	t.Run("接触当帧存活", func(t *testing.T) {
		e := &fakeEnemy{x: 5, y: 0}
		te := newTestEnv(e)
		b := te.fire(t, "property:penetrate, when:enemy-contact, do:destroy")

		b.OnEnemyContact(e)
		b.OnEnemyContact(e)

		if !b.Alive() {
			t.Error("penetrating bullet destroyed inside the contact callback")
		}
		if e.hits != 1 {
			t.Errorf("enemy hit %d times, want 1", e.hits)
		}
		if !b.Condition(1) {
			t.Error("enemy-contact should latch for a penetrating bullet")
		}
	})

	t.Run("下一帧执行 DO", func(t *testing.T) {
		e := &fakeEnemy{x: 5, y: 0}
		te := newTestEnv(e)
		b := te.fire(t, "property:penetrate, when:enemy-contact, do:speed-up")
		speed := b.Speed

		b.OnEnemyContact(e)
		if b.IsExecuted(2) {
			t.Fatal("DO should not run synchronously on penetrating contact")
		}

		for i := 0; i < 3; i++ {
			b.Update()
		}
		if !b.IsExecuted(2) {
			t.Fatal("speed-up should run on the next evaluation")
		}
		if want := speed * bullet.SpeedUpFactor; b.Speed != want {
			t.Errorf("speed = %v, want %v (applied once)", b.Speed, want)
		}
		if !b.Alive() {
			t.Error("speed-up must not destroy the bullet")
		}
	})
}

// TestExplodeRadius 爆炸只影响距离严格小于半径的敌人
func TestExplodeRadius(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		wantHits int
	}{
		{"半径内", 79, 1},
		{"恰好在半径上", bullet.ExplodeRadius, 0},
		{"半径外", 81, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &fakeEnemy{x: tt.distance, y: 0}
			te := newTestEnv(e)
			te.fire(t, "when:immediate, do:explode")

			if e.hits != tt.wantHits {
				t.Errorf("hits = %d, want %d", e.hits, tt.wantHits)
			}
		})
	}
}

// TestContactEffects 毒、减速、破盾在接触时传递给敌人
func TestContactEffects(t *testing.T) {
	e := &fakeEnemy{x: 5, y: 0}
	te := newTestEnv(e)
	b := te.fire(t, "property:poison, property:slow-effect, property:shield-break, when:enemy-contact, do:destroy")

	b.OnEnemyContact(e)

	if b.Alive() {
		t.Error("bullet should be destroyed on contact")
	}
	if e.poison != 1 {
		t.Errorf("poison = %v, want 1", e.poison)
	}
	if e.slowMult != 0.5 || e.slowFor != 3*time.Second {
		t.Errorf("slow = %v for %v, want 0.5 for 3s", e.slowMult, e.slowFor)
	}
	if e.shieldHits != 1 {
		t.Errorf("shield-break hits = %d, want 1", e.shieldHits)
	}
}

// TestWallContact 撞墙次数与反弹
func TestWallContact(t *testing.T) {
	t.Run("默认上限销毁", func(t *testing.T) {
		te := newTestEnv()
		b := te.fire(t, "when:enemy-contact, do:destroy")
		b.OnWallContact()
		b.OnWallContact()
		if !b.Alive() {
			t.Fatal("destroyed before reaching max bounces")
		}
		b.OnWallContact()
		if b.Alive() {
			t.Error("bullet should be destroyed at 3 wall contacts")
		}
	})

	t.Run("反弹提高上限", func(t *testing.T) {
		te := newTestEnv()
		b := te.fire(t, "when:wall-contact, do:bounce")
		b.OnWallContact()
		if !b.Bounce || b.MaxBounces != 5 {
			t.Fatalf("Bounce = %v MaxBounces = %d, want true 5", b.Bounce, b.MaxBounces)
		}
		for i := 0; i < 3; i++ {
			b.OnWallContact()
		}
		if !b.Alive() {
			t.Fatal("destroyed before 5 wall contacts")
		}
		b.OnWallContact()
		if b.Alive() {
			t.Error("bullet should be destroyed at 5 wall contacts")
		}
	})
}

// TestSplitGenerationLimit 达到代数上限的子弹不再分裂，但仍然销毁
func TestSplitGenerationLimit(t *testing.T) {
	te := newTestEnv()
	te.env.Tuning.MaxGeneration = 2
	te.fire(t, "when:immediate, do:split")

	// 0 代 1 颗，1 代 2 颗，2 代 4 颗
	if got := len(te.spawner.spawned); got != 7 {
		t.Errorf("spawned %d bullets, want 7", got)
	}
	if got := te.spawner.alive(); got != 0 {
		t.Errorf("%d bullets alive, want 0", got)
	}
}

// TestSplitPopulationLimit 数量上限阻止分裂时父子弹仍然销毁
func TestSplitPopulationLimit(t *testing.T) {
	te := newTestEnv()
	te.spawner.limit = 2
	b := te.fire(t, "when:timer-1, do:split")
	if err := te.spawner.Admit(b.ShotID, 1); err != nil {
		t.Fatalf("one more bullet should still fit: %v", err)
	}

	te.timers.Advance(TimerShort)
	if b.Alive() {
		t.Error("parent should self-destroy even when split is capped")
	}
	if !b.IsExecuted(1) {
		t.Error("split should be marked executed")
	}
	if got := len(te.spawner.spawned); got != 1 {
		t.Errorf("spawned %d bullets, want only the parent", got)
	}
}

// TestSplitChildrenIndependent 子弹重新注册自己的定时器，不继承父子弹已经过的时间
func TestSplitChildrenIndependent(t *testing.T) {
	te := newTestEnv()
	te.fire(t, "when:timer-1, do:split")

	te.timers.Advance(TimerShort)
	children := te.spawner.spawned[1:]
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	for i, c := range children {
		if !c.Alive() || c.PendingTimers() != 1 {
			t.Errorf("child %d alive=%v pending=%d, want alive with 1 timer", i, c.Alive(), c.PendingTimers())
		}
	}

	te.timers.Advance(TimerShort - time.Millisecond)
	if te.spawner.alive() != 2 {
		t.Fatalf("children split early")
	}
	te.timers.Advance(time.Millisecond)
	if got := len(te.spawner.spawned); got != 7 {
		t.Errorf("spawned %d bullets after second split, want 7", got)
	}
}

// TestHomingTurnRate 追踪转向受每帧转角限制
func TestHomingTurnRate(t *testing.T) {
	e := &fakeEnemy{x: 0, y: 300}
	te := newTestEnv(e)
	b := te.fire(t, "property:homing")

	b.Update()
	if math.Abs(b.Heading()-0.08) > 1e-9 {
		t.Errorf("Heading() = %v, want 0.08", b.Heading())
	}
	if math.Abs(math.Hypot(b.VX, b.VY)-b.Speed) > 1e-9 {
		t.Error("homing changed speed magnitude")
	}
}

// TestMagneticPull 磁力牵引距离 = 强度 / 距离
func TestMagneticPull(t *testing.T) {
	inside := &fakeEnemy{x: 60, y: 0}
	outside := &fakeEnemy{x: 151, y: 0}
	te := newTestEnv(inside, outside)
	b := te.fire(t, "property:magnetic")

	b.Update()
	if math.Abs(inside.nudgeX-(-2)) > 1e-9 || inside.nudgeY != 0 {
		t.Errorf("nudge = (%v,%v), want (-2,0)", inside.nudgeX, inside.nudgeY)
	}
	if outside.nudgeCalled != 0 {
		t.Error("enemy outside radius was pulled")
	}
}

// TestTimerAfterExternalDestroy 外部销毁后计时器不会复活子弹
func TestTimerAfterExternalDestroy(t *testing.T) {
	te := newTestEnv()
	b := te.fire(t, "when:timer-1, do:speed-up")
	te.timers.Advance(500 * time.Millisecond)
	b.Destroy()
	te.timers.Advance(time.Second)
	if b.IsExecuted(1) {
		t.Error("DO executed after destroy")
	}
}

// TestProgramIsolated 修改原程序不影响已发射的子弹
func TestProgramIsolated(t *testing.T) {
	te := newTestEnv()
	p := mustParse(t, "when:timer-1, do:destroy")
	b, err := bullet.Fire(te.env, p, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	p[1] = mustParse(t, "do:split")[0]

	if !b.Program().Equal(mustParse(t, "when:timer-1, do:destroy")) {
		t.Errorf("bullet program changed: %s", b.Program())
	}
}

// TestFireNilSpawner 没有宿主时子弹仍可运行
func TestFireNilSpawner(t *testing.T) {
	env := &bullet.Env{Tuning: bullet.DefaultTuning()}
	b, err := bullet.Fire(env, mustParse(t, "when:immediate, do:speed-up"), 0, 0, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(b.VY-300) > 1e-9 {
		t.Errorf("VY = %v, want 300", b.VY)
	}
}

// TestFirePopulationLimit 宿主拒绝时 Fire 返回错误
func TestFirePopulationLimit(t *testing.T) {
	te := newTestEnv()
	te.spawner.limit = 1
	te.fire(t, "when:enemy-contact, do:destroy")
	if _, err := bullet.Fire(te.env, program.DefaultProgram(), 0, 0, 0); err != bullet.ErrPopulationLimit {
		t.Errorf("Fire() error = %v, want ErrPopulationLimit", err)
	}
}
