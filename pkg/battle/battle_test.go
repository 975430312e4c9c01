package battle

import (
	"testing"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/config"
	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/systems"
)

const frame = 1.0 / 60.0

func mustParse(t *testing.T, text string) program.Program {
	t.Helper()
	p, err := program.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return p
}

func newTestBattle(t *testing.T, opts Options) *Battle {
	t.Helper()
	b, err := New(config.DefaultGameConfig(), program.NewAuthoring(), opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return b
}

func run(b *Battle, seconds float64) {
	for i := 0; i < int(seconds/frame); i++ {
		b.Update(frame)
	}
}

func TestNewRejectsNilConfig(t *testing.T) {
	if _, err := New(nil, nil, Options{}); err == nil {
		t.Error("New(nil) should fail")
	}
}

func TestDefaultShotKillsEnemy(t *testing.T) {
	b := newTestBattle(t, Options{})
	px, py, _ := b.PlayerPosition()
	if _, err := b.SpawnEnemy(px+200, py, 0, false); err != nil {
		t.Fatalf("SpawnEnemy() error: %v", err)
	}

	if _, err := b.Fire(); err != nil {
		t.Fatalf("Fire() error: %v", err)
	}
	run(b, 1.5)

	if b.State().Score != 10 || b.State().Kills != 1 {
		t.Errorf("score=%d kills=%d, want 10/1", b.State().Score, b.State().Kills)
	}
	if b.LiveBullets() != 0 {
		t.Errorf("live bullets = %d, want 0", b.LiveBullets())
	}
	if len(b.Enemies()) != 0 {
		t.Errorf("enemies = %d, want 0", len(b.Enemies()))
	}
}

func TestFireUsesFirstValidSlot(t *testing.T) {
	a := program.NewAuthoring()
	for _, n := range mustParse(t, "when:timer-1, do:destroy") {
		a.AddNode(1, n)
	}
	b, err := New(config.DefaultGameConfig(), a, Options{})
	if err != nil {
		t.Fatal(err)
	}

	shot, err := b.Fire()
	if err != nil {
		t.Fatalf("Fire() error: %v", err)
	}
	if !shot.Program().Equal(a.Program(1)) {
		t.Errorf("fired %s, want slot 2 program", shot.Program())
	}
	if shot.PendingTimers() != 1 {
		t.Errorf("PendingTimers = %d, want 1", shot.PendingTimers())
	}
}

func TestTimedExplosion(t *testing.T) {
	var trace []program.Action
	b := newTestBattle(t, Options{
		NoPlayer: true,
		OnExecute: func(_ *bullet.Bullet, _ int, node program.Node) {
			trace = append(trace, node.Action())
		},
	})
	// 2 秒后子弹到达 x≈500，敌人在其下方 60 像素，处于爆炸半径内
	if _, err := b.SpawnEnemy(500, 360, 0, false); err != nil {
		t.Fatal(err)
	}
	if _, err := b.FireProgram(mustParse(t, "when:timer-2, do:explode"), 100, 300, 0); err != nil {
		t.Fatal(err)
	}

	run(b, 2.5)

	if len(trace) != 1 || trace[0] != program.ActionExplode {
		t.Errorf("trace = %v, want [explode]", trace)
	}
	if b.State().Kills != 1 {
		t.Errorf("kills = %d, want 1", b.State().Kills)
	}
}

func TestGameOverDestroysBullets(t *testing.T) {
	b := newTestBattle(t, Options{})
	shot, err := b.FireProgram(mustParse(t, "when:timer-2, do:split"), 300, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	px, py, _ := b.PlayerPosition()
	if _, err := b.SpawnEnemy(px, py, 0, false); err != nil {
		t.Fatal(err)
	}

	b.Update(frame)

	if !b.State().IsGameOver {
		t.Fatal("player touching an enemy should end the game")
	}
	if shot.Alive() {
		t.Error("bullets should be destroyed on game over")
	}
	if b.Timers().Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", b.Timers().Pending())
	}
	if _, err := b.Fire(); err != ErrGameOver {
		t.Errorf("Fire() after game over error = %v, want ErrGameOver", err)
	}
}

func TestPlayerFiresFromInput(t *testing.T) {
	b := newTestBattle(t, Options{})
	b.SetControls(systems.PlayerControls{Fire: true})
	b.Update(frame)

	if b.LiveBullets() != 1 {
		t.Fatalf("live bullets = %d, want 1", b.LiveBullets())
	}
	px, py, _ := b.PlayerPosition()
	shot := b.Bullets()[0]
	// 发射后同一帧已经移动了一步
	if shot.Y != py || shot.X <= px+b.Config().Player.MuzzleOffset {
		t.Errorf("bullet at (%.1f, %.1f), want ahead of muzzle at y=%.1f", shot.X, shot.Y, py)
	}
}

func TestAutoSpawn(t *testing.T) {
	b := newTestBattle(t, Options{AutoSpawn: true})
	run(b, 3.1)
	if got := len(b.Enemies()); got != 3 {
		t.Errorf("enemies after initial wave = %d, want 3", got)
	}
}
