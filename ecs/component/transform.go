package component

import "github.com/milk9111/lifedrain/ability"

// Transform is an arena position in world units. Z is height; the arena is
// drawn top-down so Z only matters for distances.
type Transform struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the transform as a world-space point.
func (t *Transform) Vec() ability.Vec3 {
	if t == nil {
		return ability.Vec3{}
	}
	return ability.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

var TransformComponent = NewComponent[Transform]()
