package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/lifedrain/common"
	"github.com/milk9111/lifedrain/ecs/entity"
	"github.com/milk9111/lifedrain/ecs/system"
	"github.com/milk9111/lifedrain/prefabs"
	"github.com/milk9111/lifedrain/save"
	"github.com/milk9111/lifedrain/sim"
)

type GameOptions struct {
	Debug bool
	Watch bool
	// Store is optional; nil disables persistence.
	Store *save.Store
}

type Game struct {
	opts    GameOptions
	sim     *sim.Sim
	input   *system.InputSystem
	render  *system.RenderSystem
	watcher *prefabs.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	tuning  *widget.Text
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		opts:   opts,
		input:  system.NewInputSystem(),
		render: system.NewRenderSystem(),
	}
	g.render.Debug = opts.Debug

	if err := g.reset(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// reset rebuilds the arena from the current prefabs.
func (g *Game) reset() error {
	specs, err := entity.LoadSpecs()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	s, err := sim.New(specs, g.input)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.input.SetBindings(specs.Drain.Key, specs.Drain.CancelKey)
	if g.opts.Store != nil {
		s.SetPlayerHealth(g.opts.Store.BeginRun())
	}
	g.sim = s
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			g.tuning.Label = tuningText(g)
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()
	g.sim.Step()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	switch {
	case prefabs.IsDrainSpec(path):
		spec, err := prefabs.LoadDrainSpec()
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		if err := g.sim.ApplyDrainSpec(spec); err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		g.input.SetBindings(spec.Key, spec.CancelKey)
		log.Printf("reload %s: applies on next drain", path)
	default:
		g.sim.Wander.Invalidate(path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.sim.World, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Restart rebuilds the arena, keeping options and the watcher.
func (g *Game) Restart() {
	if err := g.Persist(); err != nil {
		log.Printf("save failed: %v", err)
	}
	if err := g.reset(); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	g.paused = false
}

// Persist records the player's health and kills when a store is configured.
func (g *Game) Persist() error {
	if g.opts.Store == nil || g.sim == nil {
		return nil
	}
	health := 0.0
	if h := g.sim.PlayerHealth(); h != nil {
		health = h.Current
	}
	g.opts.Store.Record(health, g.sim.Kills())
	return g.opts.Store.Save()
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
