package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
	"github.com/milk9111/lifedrain/prefabs"
)

// Arena lists the entities spawned by NewArena.
type Arena struct {
	Bounds  ecs.Entity
	Player  ecs.Entity
	Enemies []ecs.Entity
}

// Specs bundles every prefab an arena needs.
type Specs struct {
	Arena  *prefabs.ArenaSpec
	Player *prefabs.PlayerSpec
	Enemy  *prefabs.EnemySpec
	Drain  *prefabs.DrainSpec
}

// LoadSpecs reads every arena prefab.
func LoadSpecs() (Specs, error) {
	var specs Specs
	var err error
	if specs.Arena, err = prefabs.LoadArenaSpec(); err != nil {
		return Specs{}, err
	}
	if specs.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return Specs{}, err
	}
	if specs.Enemy, err = prefabs.LoadEnemySpec(); err != nil {
		return Specs{}, err
	}
	if specs.Drain, err = prefabs.LoadDrainSpec(); err != nil {
		return Specs{}, err
	}
	return specs, nil
}

// NewArena spawns the bounds, the player and every enemy of the arena.
func NewArena(w *ecs.World, specs Specs) (Arena, error) {
	if specs.Arena == nil {
		return Arena{}, fmt.Errorf("arena: nil spec")
	}

	var arena Arena
	arena.Bounds = ecs.CreateEntity(w)
	if err := ecs.Add(w, arena.Bounds, component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{
		Width:      specs.Arena.Width,
		Height:     specs.Arena.Height,
		Scale:      specs.Arena.Scale,
		Background: specs.Arena.Background.Or(color.Black),
	}); err != nil {
		return Arena{}, fmt.Errorf("arena: add bounds: %w", err)
	}

	player, err := NewPlayer(w, specs.Player, specs.Drain)
	if err != nil {
		return Arena{}, fmt.Errorf("arena: %w", err)
	}
	arena.Player = player

	for i, spawn := range specs.Arena.Enemies {
		enemy, err := NewEnemy(w, specs.Enemy, spawn, int64(i))
		if err != nil {
			return Arena{}, fmt.Errorf("arena: enemy %d: %w", i, err)
		}
		arena.Enemies = append(arena.Enemies, enemy)
	}

	return arena, nil
}
