package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/lifedrain/ability"
	"github.com/milk9111/lifedrain/common"
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

const (
	defaultScale = 32.0
	// heightSkew lifts an entity on screen by this share of its Z.
	heightSkew   = 0.5
	beamSegments = 12
)

var (
	shadowColor = color.NRGBA{A: 0x50}
	debugColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0x40, A: 0x90}
	barBack     = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	barFill     = color.NRGBA{R: 0x30, G: 0xc0, B: 0x50, A: 0xff}
)

// RenderSystem draws the arena top-down. It is not part of the update
// scheduler; the game calls Draw from ebiten's Draw.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawable struct {
	e     ecs.Entity
	layer int
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	scale := defaultScale
	if bounds, ok := ecs.Get(w, firstEntity(w, component.ArenaBoundsComponent.Kind()), component.ArenaBoundsComponent.Kind()); ok {
		if bounds.Scale > 0 {
			scale = bounds.Scale
		}
		if bounds.Background != nil {
			screen.Fill(bounds.Background)
		}
	}

	var items []drawable
	collect := func(e ecs.Entity) {
		layer := 0
		if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = rl.Index
		}
		items = append(items, drawable{e: e, layer: layer})
	}
	ecs.ForEach(w, component.ShapeComponent.Kind(), func(e ecs.Entity, _ *component.Shape) { collect(e) })
	ecs.ForEach(w, component.LineRenderComponent.Kind(), func(e ecs.Entity, _ *component.LineRender) { collect(e) })
	ecs.ForEach(w, component.ParticleComponent.Kind(), func(e ecs.Entity, _ *component.Particle) { collect(e) })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		if line, ok := ecs.Get(w, it.e, component.LineRenderComponent.Kind()); ok {
			drawBeam(screen, line, scale)
			continue
		}
		t, ok := ecs.Get(w, it.e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if s, ok := ecs.Get(w, it.e, component.ShapeComponent.Kind()); ok {
			drawDisc(screen, t, s, scale)
			continue
		}
		if p, ok := ecs.Get(w, it.e, component.ParticleComponent.Kind()); ok {
			drawParticle(screen, t, p, scale)
		}
	}

	if r.Debug {
		r.drawDebug(w, screen, scale)
	}
	r.drawHUD(w, screen)
}

func project(v ability.Vec3, scale float64) (float32, float32) {
	return float32(v.X * scale), float32((v.Y - v.Z*heightSkew) * scale)
}

func drawDisc(screen *ebiten.Image, t *component.Transform, s *component.Shape, scale float64) {
	r := float32(s.Radius * scale)
	gx, gy := project(ability.Vec3{X: t.X, Y: t.Y}, scale)
	if t.Z != 0 {
		vector.DrawFilledCircle(screen, gx, gy, r*0.8, shadowColor, true)
	}
	x, y := project(t.Vec(), scale)
	clr := s.Color
	if clr == nil {
		clr = color.White
	}
	vector.DrawFilledCircle(screen, x, y, r, clr, true)
}

// drawBeam strokes the line in short segments, blending StartColor into
// EndColor along its length.
func drawBeam(screen *ebiten.Image, line *component.LineRender, scale float64) {
	if line.Hidden {
		return
	}
	x0, y0 := project(line.Start, scale)
	x1, y1 := project(line.End, scale)
	width := float32(math.Max(1, float64(line.Width)*scale))

	if line.EndColor == nil {
		clr := line.StartColor
		if clr == nil {
			clr = color.White
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
		return
	}
	for i := 0; i < beamSegments; i++ {
		t0 := float32(i) / beamSegments
		t1 := float32(i+1) / beamSegments
		clr := common.LerpColor(line.StartColor, line.EndColor, (t0+t1)/2)
		vector.StrokeLine(screen,
			common.Lerp(x0, x1, t0), common.Lerp(y0, y1, t0),
			common.Lerp(x0, x1, t1), common.Lerp(y0, y1, t1),
			width, clr, true)
	}
}

func drawParticle(screen *ebiten.Image, t *component.Transform, p *component.Particle, scale float64) {
	fade := float32(1)
	if p.MaxFrames > 0 {
		fade = 1 - float32(p.Frames)/float32(p.MaxFrames)
	}
	x, y := project(t.Vec(), scale)
	r := float32(math.Max(1, p.Radius*scale))
	vector.DrawFilledCircle(screen, x, y, r, common.Fade(p.Color, fade), true)
}

// drawDebug outlines drain reach around each owner, falling back to
// DebugRadius for everything else.
func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image, scale float64) {
	ecs.ForEach2(w, component.DebugRadiusComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, dr *component.DebugRadius, t *component.Transform) {
		radius := dr.Radius
		if da, ok := ecs.Get(w, e, component.DrainAbilityComponent.Kind()); ok && da.Ability != nil {
			radius = da.Ability.Config().Radius
		}
		clr := dr.Color
		if clr == nil {
			clr = debugColor
		}
		x, y := project(t.Vec(), scale)
		vector.StrokeCircle(screen, x, y, float32(radius*scale), 1, clr, true)
	})
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	const barX, barY, barW, barH = 8, 8, 160, 10
	if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		vector.DrawFilledRect(screen, barX, barY, barW, barH, barBack, false)
		vector.DrawFilledRect(screen, barX, barY, float32(barW*health.Fraction()), barH, barFill, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f/%.0f", health.Current, health.Max), barX+barW+8, barY-3)
	}

	if da, ok := ecs.Get(w, player, component.DrainAbilityComponent.Kind()); ok && da.Ability != nil {
		status := "drain ready"
		if da.Ability.Active() {
			status = fmt.Sprintf("draining %.1fs  links %d", da.Ability.Remaining(), da.Ability.LinkCount())
		}
		ebitenutil.DebugPrintAt(screen, status, barX, barY+barH+4)
	}
}
