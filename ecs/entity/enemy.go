package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
	"github.com/milk9111/lifedrain/prefabs"
)

var defaultEnemyColor = color.NRGBA{R: 0x8a, G: 0x1c, B: 0x1c, A: 0xff}

// NewEnemy spawns one enemy from the prefab at the spawn point.
func NewEnemy(w *ecs.World, enemySpec *prefabs.EnemySpec, spawn prefabs.SpawnSpec, seed int64) (ecs.Entity, error) {
	if enemySpec == nil {
		return 0, fmt.Errorf("enemy: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X: spawn.Transform.X,
		Y: spawn.Transform.Y,
		Z: spawn.Transform.Z,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}

	maxHealth := enemySpec.Health
	if spawn.Health > 0 {
		maxHealth = spawn.Health
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), component.NewHealth(maxHealth)); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: enemySpec.Radius}); err != nil {
		return 0, fmt.Errorf("enemy: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: enemySpec.Category}); err != nil {
		return 0, fmt.Errorf("enemy: add collision layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.ShapeComponent.Kind(), &component.Shape{
		Radius: enemySpec.Radius,
		Color:  enemySpec.Color.Or(defaultEnemyColor),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add shape: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: enemySpec.RenderLayer}); err != nil {
		return 0, fmt.Errorf("enemy: add render layer: %w", err)
	}

	if enemySpec.Script == "" {
		return entity, nil
	}

	if err := ecs.Add(w, entity, component.WanderComponent.Kind(), &component.Wander{
		Script: enemySpec.Script,
		Speed:  enemySpec.Speed,
		HomeX:  spawn.Transform.X,
		HomeY:  spawn.Transform.Y,
		Range:  enemySpec.WanderRange,
		Seed:   seed,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add wander: %w", err)
	}

	return entity, nil
}
