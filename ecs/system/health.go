package system

import (
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

// EnemyDiedEventType is pushed with the dead entity as Data.
const EnemyDiedEventType = "enemy_died"

// HealthSystem removes enemies whose health ran out. Any beam still
// pointing at them is released by the drain on its next sweep.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, health *component.Health) {
		if health.IsAlive() {
			return
		}
		w.Events().Push(ecs.Event{Type: EnemyDiedEventType, Data: e})
		ecs.DestroyEntity(w, e)
	})
}
