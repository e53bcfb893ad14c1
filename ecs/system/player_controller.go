package system

import (
	"math"

	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

const defaultMoveSpeed = 5.0

// PlayerControllerSystem turns movement input into player velocity.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity) {
		speed := player.MoveSpeed
		if speed <= 0 {
			speed = defaultMoveSpeed
		}

		x, y := input.MoveX, input.MoveY
		// Diagonals are no faster than straight moves.
		if l := math.Hypot(x, y); l > 1 {
			x /= l
			y /= l
		}

		if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !health.IsAlive() {
			x, y = 0, 0
		}

		vel.X = x * speed
		vel.Y = y * speed
	})
}
