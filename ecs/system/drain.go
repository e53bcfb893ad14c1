package system

import (
	"log"

	"github.com/milk9111/lifedrain/ability"
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

// DrainEventType is the ecs.Event type used for drain events.
const DrainEventType = "drain"

// DrainSystem runs every DrainAbility in the world. It builds the ability
// the first time it sees an owner, maps input edges onto Activate and
// Cancel, then ticks it with the world frame step.
type DrainSystem struct {
	physics *PhysicsSystem
}

func NewDrainSystem(physics *PhysicsSystem) *DrainSystem {
	return &DrainSystem{physics: physics}
}

func (s *DrainSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.DrainAbilityComponent.Kind(), func(e ecs.Entity, da *component.DrainAbility) {
		if da.Ability == nil {
			da.Ability = s.build(w, e, da)
		}
		d := da.Ability

		if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !health.IsAlive() {
			d.Cancel()
			return
		}

		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			if input.CancelPressed {
				d.Cancel()
			} else if input.DrainPressed {
				d.Activate()
			}
		}

		d.Tick(w.DeltaTime())
	})
}

func (s *DrainSystem) build(w *ecs.World, owner ecs.Entity, da *component.DrainAbility) *ability.Drain {
	var effect ability.Effect
	if ecs.Has(w, owner, component.ParticleEmitterComponent.Kind()) {
		effect = &emitterEffect{w: w, e: owner}
	}

	d := ability.New(
		da.Config,
		&worldSpace{w: w, physics: s.physics},
		&beamLinks{w: w, owner: owner},
		effect,
		&healthHealer{w: w, e: owner},
	)

	push := func(kind ecs.DrainEventKind, target ecs.Entity) {
		w.Events().Push(ecs.Event{Type: DrainEventType, Data: ecs.DrainEvent{Entity: owner, Kind: kind, Target: target}})
	}
	d.OnStart = func() { push(ecs.DrainEventStarted, 0) }
	d.OnEnd = func(cancelled bool) {
		if cancelled {
			log.Printf("drain: entity=%s cancelled", owner)
		}
		push(ecs.DrainEventEnded, 0)
	}
	d.OnLink = func(id ability.TargetID) { push(ecs.DrainEventLinked, ecs.Entity(id)) }
	d.OnRelease = func(id ability.TargetID) { push(ecs.DrainEventReleased, ecs.Entity(id)) }
	return d
}

// worldSpace answers drain range queries through the physics index.
type worldSpace struct {
	w       *ecs.World
	physics *PhysicsSystem
}

func (s *worldSpace) FindInRadius(center ability.Vec3, radius float64, filter ability.Filter) []ability.Target {
	found := s.physics.QueryRadius(s.w, center, radius, uint32(filter))
	if len(found) == 0 {
		return nil
	}
	out := make([]ability.Target, 0, len(found))
	for _, e := range found {
		out = append(out, &enemyTarget{w: s.w, e: e})
	}
	return out
}

func (s *worldSpace) InRadius(center ability.Vec3, radius float64, filter ability.Filter, t ability.Target) bool {
	return s.physics.Overlaps(s.w, ecs.Entity(t.ID()), center, radius, uint32(filter))
}

// enemyTarget is a damageable entity. It stays valid while the entity is
// alive with a living Health.
type enemyTarget struct {
	w *ecs.World
	e ecs.Entity
}

func (t *enemyTarget) ID() ability.TargetID {
	return ability.TargetID(t.e)
}

func (t *enemyTarget) Valid() bool {
	health, ok := ecs.Get(t.w, t.e, component.HealthComponent.Kind())
	return ok && health.IsAlive()
}

func (t *enemyTarget) Position() ability.Vec3 {
	transform, _ := ecs.Get(t.w, t.e, component.TransformComponent.Kind())
	return transform.Vec()
}

func (t *enemyTarget) TakeDamage(amount float64) {
	if health, ok := ecs.Get(t.w, t.e, component.HealthComponent.Kind()); ok {
		health.TakeDamage(amount)
	}
}

// beamLinks creates one line entity per linked target.
type beamLinks struct {
	w     *ecs.World
	owner ecs.Entity
}

func (l *beamLinks) Create() ability.Link {
	style := component.LinkStyle{}
	if da, ok := ecs.Get(l.w, l.owner, component.DrainAbilityComponent.Kind()); ok {
		style = da.Style
	}

	e := ecs.CreateEntity(l.w)
	_ = ecs.Add(l.w, e, component.LinkTagComponent.Kind(), &component.LinkTag{})
	_ = ecs.Add(l.w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 3})
	_ = ecs.Add(l.w, e, component.LineRenderComponent.Kind(), &component.LineRender{
		Width:      style.Width,
		StartColor: style.StartColor,
		EndColor:   style.EndColor,
		// Hidden until the first SetEndpoints.
		Hidden: true,
	})
	return &beam{w: l.w, e: e}
}

func (l *beamLinks) Destroy(link ability.Link) {
	if b, ok := link.(*beam); ok && b != nil {
		ecs.DestroyEntity(l.w, b.e)
	}
}

type beam struct {
	w *ecs.World
	e ecs.Entity
}

func (b *beam) SetEndpoints(start, end ability.Vec3) {
	line, ok := ecs.Get(b.w, b.e, component.LineRenderComponent.Kind())
	if !ok {
		return
	}
	line.Start = start
	line.End = end
	line.Hidden = false
}

// emitterEffect toggles the owner's particle emitter.
type emitterEffect struct {
	w *ecs.World
	e ecs.Entity
}

func (f *emitterEffect) Play() {
	if emitter, ok := ecs.Get(f.w, f.e, component.ParticleEmitterComponent.Kind()); ok {
		emitter.Playing = true
	}
}

func (f *emitterEffect) Stop() {
	if emitter, ok := ecs.Get(f.w, f.e, component.ParticleEmitterComponent.Kind()); ok {
		emitter.Playing = false
		emitter.Reset()
	}
}

type healthHealer struct {
	w *ecs.World
	e ecs.Entity
}

func (h *healthHealer) Position() ability.Vec3 {
	transform, _ := ecs.Get(h.w, h.e, component.TransformComponent.Kind())
	return transform.Vec()
}

func (h *healthHealer) Heal(amount float64) float64 {
	health, ok := ecs.Get(h.w, h.e, component.HealthComponent.Kind())
	if !ok {
		return 0
	}
	return health.Heal(amount)
}
