package systems

import (
	"testing"

	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

func TestLifetimeSystem(t *testing.T) {
	tests := []struct {
		name        string
		maxLifetime float64
		steps       []float64
		wantRemoved bool
	}{
		{"未到期", 10, []float64{5}, false},
		{"一次到期", 10, []float64{12}, true},
		{"多帧累计到期", 5, []float64{3, 4}, true},
		{"恰好到期", 2, []float64{1, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewLifetimeSystem(em)
			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: tt.maxLifetime})

			for _, dt := range tt.steps {
				system.Update(dt)
			}
			em.RemoveMarkedEntities()

			if removed := !em.EntityExists(id); removed != tt.wantRemoved {
				t.Errorf("removed = %v, want %v", removed, tt.wantRemoved)
			}
		})
	}
}

func TestLifetimeEffectRingRemoved(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)
	keep := em.CreateEntity()
	ecs.AddComponent(em, keep, &components.LifetimeComponent{MaxLifetime: 10})
	ring := em.CreateEntity()
	ecs.AddComponent(em, ring, &components.LifetimeComponent{MaxLifetime: 0.3})

	system.Update(0.5)
	em.RemoveMarkedEntities()

	if em.EntityExists(ring) {
		t.Error("expired ring should be removed")
	}
	if !em.EntityExists(keep) {
		t.Error("unexpired entity should remain")
	}
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, keep)
	if lifetime.CurrentLifetime != 0.5 {
		t.Errorf("CurrentLifetime = %.2f, want 0.5", lifetime.CurrentLifetime)
	}
}

func TestLifetimeExpiredBulletIsDestroyed(t *testing.T) {
	ta := newTestArena(BulletLimits{MaxLive: 10, MaxPerShot: 10})
	system := NewLifetimeSystem(ta.em)
	b := ta.fire(t, "when:timer-2, do:explode", 50, 50, 0)
	id, _ := ta.bulletEntity(b)

	system.Update(11.0)

	if b.Alive() {
		t.Fatal("bullet should be destroyed after max lifetime")
	}
	if b.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, want 0", b.PendingTimers())
	}
	if ta.spawner.Live() != 0 {
		t.Errorf("live = %d, want 0", ta.spawner.Live())
	}
	if !ta.em.IsMarkedForDestroy(id) {
		t.Error("bullet entity should be marked for destroy")
	}
}
