package component

import (
	"image/color"

	"github.com/milk9111/lifedrain/ability"
)

// LinkStyle describes how drain beams are drawn.
type LinkStyle struct {
	Width      float32
	StartColor color.Color
	EndColor   color.Color
}

// DrainAbility attaches a drain to its owner (the player). Ability is built
// by the drain system from Config the first time it sees the entity.
type DrainAbility struct {
	Config  ability.Config
	Style   LinkStyle
	Ability *ability.Drain
}

var DrainAbilityComponent = NewComponent[DrainAbility]()
