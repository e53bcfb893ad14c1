package component

import "image/color"

// ArenaBounds is the playable rectangle in world units, origin top-left.
type ArenaBounds struct {
	Width      float64
	Height     float64
	Scale      float64
	Background color.Color
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
