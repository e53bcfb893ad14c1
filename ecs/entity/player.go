package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
	"github.com/milk9111/lifedrain/prefabs"
)

var defaultPlayerColor = color.NRGBA{R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff}

// NewPlayer builds the player and its drain from prefab specs.
func NewPlayer(w *ecs.World, playerSpec *prefabs.PlayerSpec, drainSpec *prefabs.DrainSpec) (ecs.Entity, error) {
	if playerSpec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	cfg, err := drainSpec.Config()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: playerSpec.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X: playerSpec.Transform.X,
		Y: playerSpec.Transform.Y,
		Z: playerSpec.Transform.Z,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}

	health := component.NewHealth(playerSpec.MaxHealth)
	if playerSpec.StartHealth > 0 && playerSpec.StartHealth < health.Max {
		health.Current = playerSpec.StartHealth
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), health); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: playerSpec.Radius}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: 1}); err != nil {
		return 0, fmt.Errorf("player: add collision layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.ShapeComponent.Kind(), &component.Shape{
		Radius: playerSpec.Radius,
		Color:  playerSpec.Color.Or(defaultPlayerColor),
	}); err != nil {
		return 0, fmt.Errorf("player: add shape: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerSpec.RenderLayer}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	if drainSpec == nil {
		return entity, nil
	}

	if err := ecs.Add(w, entity, component.DrainAbilityComponent.Kind(), &component.DrainAbility{
		Config: cfg,
		Style:  LinkStyle(drainSpec),
	}); err != nil {
		return 0, fmt.Errorf("player: add drain: %w", err)
	}

	if err := ecs.Add(w, entity, component.ParticleEmitterComponent.Kind(), &component.ParticleEmitter{
		Rate:       drainSpec.Effect.Rate,
		Speed:      drainSpec.Effect.Speed,
		LifeFrames: drainSpec.Effect.LifeFrames,
		Radius:     drainSpec.Effect.Radius,
		Color:      drainSpec.Effect.Color.Or(color.NRGBA{R: 0xc0, G: 0x20, B: 0x30, A: 0x80}),
	}); err != nil {
		return 0, fmt.Errorf("player: add particle emitter: %w", err)
	}

	if err := ecs.Add(w, entity, component.DebugRadiusComponent.Kind(), &component.DebugRadius{Radius: cfg.Radius}); err != nil {
		return 0, fmt.Errorf("player: add debug radius: %w", err)
	}

	return entity, nil
}

// LinkStyle converts the beam section of a drain spec.
func LinkStyle(spec *prefabs.DrainSpec) component.LinkStyle {
	if spec == nil {
		return component.LinkStyle{}
	}
	return component.LinkStyle{
		Width:      spec.Link.Width,
		StartColor: spec.Link.StartColor.Color,
		EndColor:   spec.Link.EndColor.Color,
	}
}
