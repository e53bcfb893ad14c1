package component

import (
	"image/color"

	"github.com/milk9111/lifedrain/ability"
)

// LineRender defines a world-space line to render. When EndColor is set the
// line is drawn as a gradient from StartColor to EndColor.
type LineRender struct {
	Start      ability.Vec3
	End        ability.Vec3
	Width      float32
	StartColor color.Color
	EndColor   color.Color
	Hidden     bool
}

var LineRenderComponent = NewComponent[LineRender]()
