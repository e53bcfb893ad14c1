package component

import "image/color"

// DebugRadius draws a circle outline around the entity in debug mode.
type DebugRadius struct {
	Radius float64
	Color  color.Color
}

var DebugRadiusComponent = NewComponent[DebugRadius]()
