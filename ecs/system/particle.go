package system

import (
	"math"
	"math/rand"

	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

// ParticleSystem spawns motes from playing emitters and moves live ones.
// Particles expire through their TTL.
type ParticleSystem struct {
	rng *rand.Rand
}

func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{rng: rand.New(rand.NewSource(seed))}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		t.X += p.VX * dt
		t.Y += p.VY * dt
		p.Frames++
	})

	ecs.ForEach2(w, component.ParticleEmitterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, emitter *component.ParticleEmitter, t *component.Transform) {
		n := emitter.Accumulate(dt)
		for i := 0; i < n; i++ {
			s.spawn(w, emitter, *t)
		}
	})
}

func (s *ParticleSystem) spawn(w *ecs.World, emitter *component.ParticleEmitter, at component.Transform) {
	life := emitter.LifeFrames
	if life <= 0 {
		life = 30
	}
	angle := s.rng.Float64() * 2 * math.Pi
	speed := emitter.Speed * (0.5 + s.rng.Float64()*0.5)

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &at)
	_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
		VX:        math.Cos(angle) * speed,
		VY:        math.Sin(angle) * speed,
		MaxFrames: life,
		Radius:    emitter.Radius,
		Color:     emitter.Color,
	})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: life})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 4})
}
