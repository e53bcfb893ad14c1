package system

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lifedrain/ability"
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
)

// PhysicsSystem keeps a chipmunk space in sync with the world. Bodies are
// kinematic circles: Transform is authoritative before the step, Velocity
// moves the body, and the result is written back after the step. The space
// doubles as the spatial index for drain range queries.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body     *cp.Body
	shape    *cp.Shape
	category uint
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    cp.NewSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.space.Step(w.DeltaTime())
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(e, w, bodyComp)
			ps.entities[e] = info
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}

		info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		vx, vy := 0.0, 0.0
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vx, vy = vel.X, vel.Y
		}
		info.body.SetVelocity(vx, vy)
		ps.space.ReindexShapesForBody(info.body)
	})
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, w *ecs.World, bodyComp *component.PhysicsBody) *bodyInfo {
	if bodyComp.Radius <= 0 {
		bodyComp.Radius = 0.5
	}
	radius := bodyComp.Radius

	body := ps.space.AddBody(cp.NewKinematicBody())
	shape := ps.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetSensor(true)
	shape.UserData = e

	category, mask := uint(1), uint(cp.ALL_CATEGORIES)
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		if layer.Category != 0 {
			category = uint(layer.Category)
		}
		if layer.Mask != 0 {
			mask = uint(layer.Mask)
		}
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, mask))

	return &bodyInfo{body: body, shape: shape, category: category}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		ps.space.RemoveBody(info.body)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	bounds, hasBounds := ecs.Get(w, firstEntity(w, component.ArenaBoundsComponent.Kind()), component.ArenaBoundsComponent.Kind())

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		if !hasBounds {
			return
		}
		transform.X = clampFloat(transform.X, bodyComp.Radius, bounds.Width-bodyComp.Radius)
		transform.Y = clampFloat(transform.Y, bodyComp.Radius, bounds.Height-bodyComp.Radius)
		if transform.X != pos.X || transform.Y != pos.Y {
			bodyComp.Body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			ps.space.ReindexShapesForBody(bodyComp.Body)
		}
	})
}

// QueryRadius returns entities whose circle overlaps the sphere at center,
// sorted by handle. The 2D space is the broadphase; Z is checked exactly.
func (ps *PhysicsSystem) QueryRadius(w *ecs.World, center ability.Vec3, radius float64, filter uint32) []ecs.Entity {
	if ps == nil || w == nil || radius < 0 {
		return nil
	}

	query := cp.NewShapeFilter(cp.NO_GROUP, uint(cp.ALL_CATEGORIES), uint(filter))
	var out []ecs.Entity
	ps.space.PointQuery(cp.Vector{X: center.X, Y: center.Y}, radius, query, func(shape *cp.Shape, _ cp.Vector, _ float64, _ cp.Vector, _ interface{}) {
		e, ok := shape.UserData.(ecs.Entity)
		if !ok {
			return
		}
		if ps.overlaps(w, e, center, radius) {
			out = append(out, e)
		}
	}, nil)

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Overlaps reports whether e is indexed, matches filter and overlaps the sphere.
func (ps *PhysicsSystem) Overlaps(w *ecs.World, e ecs.Entity, center ability.Vec3, radius float64, filter uint32) bool {
	if ps == nil || radius < 0 {
		return false
	}
	info, ok := ps.entities[e]
	if !ok {
		return false
	}
	if uint(filter)&info.category == 0 {
		return false
	}
	return ps.overlaps(w, e, center, radius)
}

func (ps *PhysicsSystem) overlaps(w *ecs.World, e ecs.Entity, center ability.Vec3, radius float64) bool {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	reach := radius
	if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		reach += math.Max(0, bodyComp.Radius)
	}
	return center.Dist(transform.Vec()) <= reach
}

func firstEntity[T any](w *ecs.World, kind component.ComponentKind[T]) ecs.Entity {
	e, _ := ecs.First(w, kind)
	return e
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return v
	}
	return math.Max(lo, math.Min(hi, v))
}
