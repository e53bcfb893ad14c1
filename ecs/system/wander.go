package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/lifedrain/ecs"
	"github.com/milk9111/lifedrain/ecs/component"
	"github.com/milk9111/lifedrain/prefabs"
)

// wanderInputs are the globals a wander script can read. It answers by
// assigning vx and vy.
var wanderInputs = []string{"x", "y", "home_x", "home_y", "wander_range", "speed", "seed", "t"}

// WanderSystem drives Wander entities with tengo scripts. Each entity keeps
// its own compiled script; a script that fails to load is reported once and
// the entity stands still until the script is reloaded.
type WanderSystem struct {
	cache   map[ecs.Entity]*wanderRuntime
	elapsed float64
}

type wanderRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	err        error
}

func NewWanderSystem() *WanderSystem {
	return &WanderSystem{cache: map[ecs.Entity]*wanderRuntime{}}
}

// Invalidate drops compiled scripts so edited files are picked up. An empty
// path drops everything.
func (s *WanderSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	base := cleanScriptName(path)
	for e, rt := range s.cache {
		if base == "" || cleanScriptName(rt.scriptPath) == base {
			delete(s.cache, e)
		}
	}
}

func (s *WanderSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.elapsed += w.DeltaTime()

	for e := range s.cache {
		if !ecs.Has(w, e, component.WanderComponent.Kind()) {
			delete(s.cache, e)
		}
	}

	ecs.ForEach3(w, component.WanderComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, wd *component.Wander, t *component.Transform, vel *component.Velocity) {
		rt := s.runtime(e, wd.Script)
		if rt.err != nil {
			vel.X, vel.Y = 0, 0
			return
		}

		vx, vy, err := rt.run(map[string]float64{
			"x":            t.X,
			"y":            t.Y,
			"home_x":       wd.HomeX,
			"home_y":       wd.HomeY,
			"wander_range": wd.Range,
			"speed":        wd.Speed,
			"seed":         float64(wd.Seed),
			"t":            s.elapsed,
		})
		if err != nil {
			fmt.Printf("ai: entity=%s wander script error: %v\n", e, err)
			rt.err = err
			vel.X, vel.Y = 0, 0
			return
		}
		vel.X, vel.Y = vx, vy
	})
}

func (s *WanderSystem) runtime(e ecs.Entity, scriptPath string) *wanderRuntime {
	if rt, ok := s.cache[e]; ok && rt.scriptPath == scriptPath {
		return rt
	}

	compiled, err := compileWanderScript(scriptPath)
	if err != nil {
		fmt.Printf("ai: entity=%s load wander script %q: %v\n", e, scriptPath, err)
	}
	rt := &wanderRuntime{scriptPath: scriptPath, compiled: compiled, err: err}
	s.cache[e] = rt
	return rt
}

func compileWanderScript(scriptPath string) (*tengo.Compiled, error) {
	if strings.TrimSpace(scriptPath) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	for _, name := range wanderInputs {
		_ = script.Add(name, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	return script.Compile()
}

func (rt *wanderRuntime) run(inputs map[string]float64) (float64, float64, error) {
	for name, v := range inputs {
		if err := rt.compiled.Set(name, v); err != nil {
			return 0, 0, err
		}
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, 0, err
	}
	if !rt.compiled.IsDefined("vx") || !rt.compiled.IsDefined("vy") {
		return 0, 0, fmt.Errorf("script must assign vx and vy")
	}
	return rt.compiled.Get("vx").Float(), rt.compiled.Get("vy").Float(), nil
}

func cleanScriptName(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}
