package system

import (
	"math"
	"testing"

	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

func addWanderer(t *testing.T, w *ecs.World, script string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: 4, Y: 4})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{X: 9, Y: 9})
	mustAdd(t, w, e, component.WanderComponent.Kind(), &component.Wander{
		Script: script,
		Speed:  1.2,
		HomeX:  4,
		HomeY:  4,
		Range:  3,
	})
	return e
}

func TestWanderSystemRunsScript(t *testing.T) {
	w := ecs.NewWorld()
	e := addWanderer(t, w, "wander.tengo")
	sys := NewWanderSystem()

	sys.Update(w)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if got := math.Hypot(vel.X, vel.Y); math.Abs(got-1.2) > 1e-9 {
		t.Fatalf("expected speed 1.2, got %v (%v, %v)", got, vel.X, vel.Y)
	}
	if vel.X <= 0 {
		t.Fatalf("expected to head toward the first waypoint on +X, got %v", vel.X)
	}
}

func TestWanderSystemMissingScriptStandsStill(t *testing.T) {
	w := ecs.NewWorld()
	e := addWanderer(t, w, "missing.tengo")
	sys := NewWanderSystem()

	sys.Update(w)
	sys.Update(w)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if vel.X != 0 || vel.Y != 0 {
		t.Fatalf("expected zero velocity, got (%v, %v)", vel.X, vel.Y)
	}
}

func TestWanderSystemInvalidate(t *testing.T) {
	w := ecs.NewWorld()
	addWanderer(t, w, "wander.tengo")
	sys := NewWanderSystem()
	sys.Update(w)

	sys.Invalidate("prefabs/scripts/other.tengo")
	if len(sys.cache) != 1 {
		t.Fatalf("unrelated script invalidated cache")
	}
	sys.Invalidate("prefabs/scripts/wander.tengo")
	if len(sys.cache) != 0 {
		t.Fatalf("expected cache cleared, got %d", len(sys.cache))
	}
}
