// Package sim assembles the arena world and its update systems. The game
// window and the headless drainsim command both drive a Sim.
package sim

import (
	"fmt"
	"log"

	"github.com/milk9111/lifedrain/ability"
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
	"github.com/milk9111/lifedrain/ecs/entity"
	"github.com/milk9111/lifedrain/ecs/system"
	"github.com/milk9111/lifedrain/prefabs"
)

type Sim struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Arena     entity.Arena
	Physics   *system.PhysicsSystem
	Wander    *system.WanderSystem

	kills int
}

// New builds the arena from specs. Systems in before run ahead of the
// simulation each frame; the game passes its input system here.
func New(specs entity.Specs, before ...ecs.System) (*Sim, error) {
	w := ecs.NewWorld()
	arena, err := entity.NewArena(w, specs)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	physics := system.NewPhysicsSystem()
	wander := system.NewWanderSystem()

	scheduler := ecs.NewScheduler(before...)
	scheduler.Add(wander)
	scheduler.Add(system.NewPlayerControllerSystem())
	scheduler.Add(physics)
	scheduler.Add(system.NewDrainSystem(physics))
	scheduler.Add(system.NewHealthSystem())
	scheduler.Add(system.NewParticleSystem(1))
	scheduler.Add(system.NewTTLSystem())

	return &Sim{
		World:     w,
		Scheduler: scheduler,
		Arena:     arena,
		Physics:   physics,
		Wander:    wander,
	}, nil
}

// Step runs one frame and returns the events it produced.
func (s *Sim) Step() []ecs.Event {
	s.Scheduler.Update(s.World)
	events := s.World.Events().Drain()
	for _, evt := range events {
		switch evt.Type {
		case system.EnemyDiedEventType:
			s.kills++
		case system.DrainEventType:
			if de, ok := evt.Data.(ecs.DrainEvent); ok && (de.Kind == ecs.DrainEventStarted || de.Kind == ecs.DrainEventEnded) {
				log.Printf("drain: %s frame=%d", de.Kind, s.World.Frame())
			}
		}
	}
	return events
}

// Press sets the player's input edges for the next Step. The game's input
// system overwrites these every frame, so this is for headless runs.
func (s *Sim) Press(drain, cancel bool) {
	if input, ok := ecs.Get(s.World, s.Arena.Player, component.InputComponent.Kind()); ok {
		input.DrainPressed = drain
		input.CancelPressed = cancel
	}
}

func (s *Sim) Drain() *ability.Drain {
	da, ok := ecs.Get(s.World, s.Arena.Player, component.DrainAbilityComponent.Kind())
	if !ok {
		return nil
	}
	return da.Ability
}

// DrainConfig returns the tuning the player's next drain will use.
func (s *Sim) DrainConfig() (ability.Config, bool) {
	da, ok := ecs.Get(s.World, s.Arena.Player, component.DrainAbilityComponent.Kind())
	if !ok {
		return ability.Config{}, false
	}
	if da.Ability != nil {
		return da.Ability.Config(), true
	}
	return da.Config, true
}

func (s *Sim) PlayerHealth() *component.Health {
	h, _ := ecs.Get(s.World, s.Arena.Player, component.HealthComponent.Kind())
	return h
}

// SetPlayerHealth restores a saved value, clamped to the pool.
func (s *Sim) SetPlayerHealth(v float64) {
	if h := s.PlayerHealth(); h != nil && v > 0 {
		h.Current = min(v, h.Max)
	}
}

// Kills counts enemies that died since the sim was built.
func (s *Sim) Kills() int {
	return s.kills
}

// ApplyDrainSpec retunes the player's drain. A running drain keeps its
// current values until it is activated again.
func (s *Sim) ApplyDrainSpec(spec *prefabs.DrainSpec) error {
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	da, ok := ecs.Get(s.World, s.Arena.Player, component.DrainAbilityComponent.Kind())
	if !ok {
		return fmt.Errorf("sim: player has no drain")
	}
	da.Config = cfg
	da.Style = entity.LinkStyle(spec)
	if da.Ability != nil {
		da.Ability.SetConfig(cfg)
	}
	if dr, ok := ecs.Get(s.World, s.Arena.Player, component.DebugRadiusComponent.Kind()); ok {
		dr.Radius = cfg.Radius
	}
	return nil
}
