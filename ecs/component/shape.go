package component

import "image/color"

// Shape is a filled disc drawn at the entity transform.
type Shape struct {
	Radius float64
	Color  color.Color
}

var ShapeComponent = NewComponent[Shape]()
