package system

import (
	"math"
	"testing"

	"github.com/milk9111/lifedrain/ability"
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

type drainRig struct {
	w         *ecs.World
	scheduler *ecs.Scheduler
	player    ecs.Entity
	events    []ecs.Event
}

func newDrainRig(t *testing.T, cfg ability.Config) *drainRig {
	t.Helper()

	w := ecs.NewWorld()
	w.SetDeltaTime(0.5)
	physics := NewPhysicsSystem()
	r := &drainRig{
		w:         w,
		scheduler: ecs.NewScheduler(physics, NewDrainSystem(physics), NewHealthSystem()),
	}

	r.player = ecs.CreateEntity(w)
	health := component.NewHealth(100)
	health.Current = 50
	mustAdd(t, w, r.player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, r.player, component.TransformComponent.Kind(), &component.Transform{})
	mustAdd(t, w, r.player, component.HealthComponent.Kind(), health)
	mustAdd(t, w, r.player, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, r.player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.5})
	mustAdd(t, w, r.player, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: 1})
	mustAdd(t, w, r.player, component.ParticleEmitterComponent.Kind(), &component.ParticleEmitter{Rate: 10})
	mustAdd(t, w, r.player, component.DrainAbilityComponent.Kind(), &component.DrainAbility{
		Config: cfg,
		Style:  component.LinkStyle{Width: 0.05},
	})
	return r
}

func (r *drainRig) enemy(t *testing.T, x, y, z, hp float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(r.w)
	mustAdd(t, r.w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, r.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z})
	mustAdd(t, r.w, e, component.HealthComponent.Kind(), component.NewHealth(hp))
	mustAdd(t, r.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.5})
	mustAdd(t, r.w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: 2})
	return e
}

func (r *drainRig) frame(drain, cancel bool) {
	input, _ := ecs.Get(r.w, r.player, component.InputComponent.Kind())
	input.DrainPressed = drain
	input.CancelPressed = cancel
	r.scheduler.Update(r.w)
	r.events = r.w.Events().Drain()
}

func (r *drainRig) ability() *ability.Drain {
	da, _ := ecs.Get(r.w, r.player, component.DrainAbilityComponent.Kind())
	return da.Ability
}

func (r *drainRig) playerHealth() float64 {
	h, _ := ecs.Get(r.w, r.player, component.HealthComponent.Kind())
	return h.Current
}

func (r *drainRig) links() []*component.LineRender {
	var out []*component.LineRender
	ecs.ForEach2(r.w, component.LinkTagComponent.Kind(), component.LineRenderComponent.Kind(), func(_ ecs.Entity, _ *component.LinkTag, line *component.LineRender) {
		out = append(out, line)
	})
	return out
}

func (r *drainRig) hasEvent(kind ecs.DrainEventKind, target ecs.Entity) bool {
	for _, evt := range r.events {
		de, ok := evt.Data.(ecs.DrainEvent)
		if evt.Type == DrainEventType && ok && de.Kind == kind && de.Target == target {
			return true
		}
	}
	return false
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func TestDrainSystemDamagesHealsAndLinks(t *testing.T) {
	r := newDrainRig(t, ability.DefaultConfig())
	near := r.enemy(t, 2, 0, 0, 100)
	far := r.enemy(t, 20, 0, 0, 100)

	r.frame(true, false)

	if !r.ability().Active() {
		t.Fatal("expected drain to be active")
	}
	if !r.hasEvent(ecs.DrainEventStarted, 0) || !r.hasEvent(ecs.DrainEventLinked, near) {
		t.Fatalf("expected started and linked events, got %+v", r.events)
	}

	nearHealth, _ := ecs.Get(r.w, near, component.HealthComponent.Kind())
	if nearHealth.Current != 95 {
		t.Fatalf("expected near enemy at 95, got %v", nearHealth.Current)
	}
	farHealth, _ := ecs.Get(r.w, far, component.HealthComponent.Kind())
	if farHealth.Current != 100 {
		t.Fatalf("expected far enemy untouched, got %v", farHealth.Current)
	}
	if got := r.playerHealth(); got != 52.5 {
		t.Fatalf("expected player at 52.5, got %v", got)
	}

	links := r.links()
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	if links[0].Hidden || links[0].Start != (ability.Vec3{}) || links[0].End != (ability.Vec3{X: 2}) {
		t.Fatalf("unexpected link %+v", links[0])
	}

	emitter, _ := ecs.Get(r.w, r.player, component.ParticleEmitterComponent.Kind())
	if !emitter.Playing {
		t.Fatal("expected effect to play while draining")
	}
}

func TestDrainSystemReleasesLinkWhenTargetLeaves(t *testing.T) {
	r := newDrainRig(t, ability.DefaultConfig())
	enemy := r.enemy(t, 2, 0, 0, 100)

	r.frame(true, false)
	if len(r.links()) != 1 {
		t.Fatalf("expected 1 link, got %d", len(r.links()))
	}

	transform, _ := ecs.Get(r.w, enemy, component.TransformComponent.Kind())
	transform.X = 10
	r.frame(false, false)

	if len(r.links()) != 0 {
		t.Fatalf("expected link released, got %d", len(r.links()))
	}
	if !r.hasEvent(ecs.DrainEventReleased, enemy) {
		t.Fatalf("expected released event, got %+v", r.events)
	}
	if !r.ability().Active() {
		t.Fatal("drain should keep running with no targets")
	}
}

func TestDrainSystemReleasesLinkWhenTargetDies(t *testing.T) {
	r := newDrainRig(t, ability.DefaultConfig())
	enemy := r.enemy(t, 2, 0, 0, 1)

	r.frame(true, false)

	if len(r.links()) != 0 {
		t.Fatalf("expected no links to a dead target, got %d", len(r.links()))
	}
	if !r.hasEvent(ecs.DrainEventLinked, enemy) || !r.hasEvent(ecs.DrainEventReleased, enemy) {
		t.Fatalf("expected link then release, got %+v", r.events)
	}
	if ecs.IsAlive(r.w, enemy) {
		t.Fatal("expected dead enemy to be destroyed")
	}

	var died bool
	for _, evt := range r.events {
		if evt.Type == EnemyDiedEventType && evt.Data == enemy {
			died = true
		}
	}
	if !died {
		t.Fatalf("expected enemy_died event, got %+v", r.events)
	}
}

func TestDrainSystemExpires(t *testing.T) {
	r := newDrainRig(t, ability.DefaultConfig())
	r.enemy(t, 2, 0, 0, 100)

	r.frame(true, false)
	for i := 0; i < 5; i++ {
		if !r.ability().Active() {
			t.Fatalf("drain ended early on frame %d", i+2)
		}
		r.frame(false, false)
	}

	if r.ability().Active() {
		t.Fatal("expected drain to end after its duration")
	}
	if math.Abs(r.ability().Elapsed()-3) > 1e-9 {
		t.Fatalf("expected elapsed 3, got %v", r.ability().Elapsed())
	}
	if len(r.links()) != 0 {
		t.Fatalf("expected all links released, got %d", len(r.links()))
	}
	if !r.hasEvent(ecs.DrainEventEnded, 0) {
		t.Fatalf("expected ended event, got %+v", r.events)
	}
	emitter, _ := ecs.Get(r.w, r.player, component.ParticleEmitterComponent.Kind())
	if emitter.Playing {
		t.Fatal("expected effect stopped")
	}
}

func TestDrainSystemCancel(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(r *drainRig)
	}{
		{name: "cancel key", cancel: func(r *drainRig) { r.frame(false, true) }},
		{name: "player death", cancel: func(r *drainRig) {
			h, _ := ecs.Get(r.w, r.player, component.HealthComponent.Kind())
			h.TakeDamage(h.Current)
			r.frame(false, false)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDrainRig(t, ability.DefaultConfig())
			r.enemy(t, 2, 0, 0, 100)
			r.enemy(t, 0, 3, 0, 100)

			r.frame(true, false)
			if len(r.links()) != 2 {
				t.Fatalf("expected 2 links, got %d", len(r.links()))
			}

			tt.cancel(r)

			if r.ability().Active() {
				t.Fatal("expected drain cancelled")
			}
			if len(r.links()) != 0 {
				t.Fatalf("expected links released, got %d", len(r.links()))
			}
		})
	}
}

func TestDrainSystemRetriggerIsIgnored(t *testing.T) {
	r := newDrainRig(t, ability.DefaultConfig())
	r.enemy(t, 2, 0, 0, 100)

	r.frame(true, false)
	r.frame(true, false)

	if got := r.ability().Elapsed(); got != 1 {
		t.Fatalf("expected elapsed to keep counting to 1, got %v", got)
	}
	if r.hasEvent(ecs.DrainEventStarted, 0) {
		t.Fatal("a second press while active must not restart the drain")
	}
	if len(r.links()) != 1 {
		t.Fatalf("expected the existing link to be reused, got %d", len(r.links()))
	}
}

func TestDrainSystemSkipsOtherCategories(t *testing.T) {
	cfg := ability.DefaultConfig()
	cfg.Filter = 4
	r := newDrainRig(t, cfg)
	enemy := r.enemy(t, 2, 0, 0, 100)

	r.frame(true, false)

	h, _ := ecs.Get(r.w, enemy, component.HealthComponent.Kind())
	if h.Current != 100 {
		t.Fatalf("enemy outside the filter should not be drained, got %v", h.Current)
	}
	if r.playerHealth() != 50 {
		t.Fatalf("expected no healing, got %v", r.playerHealth())
	}
}
