package system

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

// InputSystem samples the keyboard and first gamepad into every Input
// component. Drain and cancel are edge triggered.
type InputSystem struct {
	drainKey  ebiten.Key
	cancelKey ebiten.Key
}

func NewInputSystem() *InputSystem {
	return &InputSystem{drainKey: ebiten.KeyW, cancelKey: ebiten.KeyQ}
}

// SetBindings rebinds the drain and cancel keys by name ("W", "Space").
// Unknown names keep the current binding.
func (i *InputSystem) SetBindings(drain, cancel string) {
	if i == nil {
		return
	}
	i.drainKey = ParseKey(drain, i.drainKey)
	i.cancelKey = ParseKey(cancel, i.cancelKey)
}

func (i *InputSystem) Bindings() (drain, cancel ebiten.Key) {
	return i.drainKey, i.cancelKey
}

// ParseKey resolves a key name, returning fallback when it is empty or unknown.
func ParseKey(name string, fallback ebiten.Key) ebiten.Key {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return fallback
	}
	return k
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	moveX := axis(ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight))
	moveY := axis(ebiten.IsKeyPressed(ebiten.KeyArrowUp), ebiten.IsKeyPressed(ebiten.KeyArrowDown))
	drainPressed := inpututil.IsKeyJustPressed(i.drainKey)
	cancelPressed := inpututil.IsKeyJustPressed(i.cancelKey)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX, moveY = lx, ly
		}

		drainPressed = drainPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		cancelPressed = cancelPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.DrainPressed = drainPressed
		input.CancelPressed = cancelPressed
	})
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v -= 1
	}
	if pos {
		v += 1
	}
	return v
}
