// Package ability implements the player's drain: a timed channel that
// damages enemies in range every frame, heals the player by a share of
// the damage and keeps one beam per affected enemy.
package ability

import "math"

// State is the drain's lifecycle state.
type State int

const (
	StateInactive State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Drain is driven by the host: Activate on the trigger edge, Tick once per frame.
// It is not safe for concurrent use.
type Drain struct {
	cfg     Config
	pending Config
	space   Space
	links   Links
	effect  Effect
	player  Healer

	state   State
	elapsed float64
	reg     *registry

	// Optional callbacks, invoked synchronously from Activate/Tick/Cancel.
	OnStart   func()
	OnEnd     func(cancelled bool)
	OnLink    func(id TargetID)
	OnRelease func(id TargetID)
}

// New builds an inactive drain. effect may be nil.
func New(cfg Config, space Space, links Links, effect Effect, player Healer) *Drain {
	return &Drain{
		cfg:     cfg,
		pending: cfg,
		space:   space,
		links:   links,
		effect:  effect,
		player:  player,
		reg:     newRegistry(),
	}
}

// Activate starts the channel. It reports false, and changes nothing, when
// the drain is already running.
func (d *Drain) Activate() bool {
	if d == nil || d.state == StateActive {
		return false
	}
	d.cfg = d.pending
	d.state = StateActive
	d.elapsed = 0
	if d.effect != nil {
		d.effect.Play()
	}
	if d.OnStart != nil {
		d.OnStart()
	}
	return true
}

// Tick advances the channel by dt seconds. It does nothing while inactive.
func (d *Drain) Tick(dt float64) {
	if d == nil || d.state != StateActive {
		return
	}
	if d.elapsed >= d.cfg.Duration {
		d.finish(false)
		return
	}

	center := d.player.Position()
	if dt > 0 {
		d.drainTargets(center, dt)
	}
	d.sweep(center)

	if dt > 0 {
		d.elapsed += dt
	}
	if d.elapsed >= d.cfg.Duration {
		d.finish(false)
	}
}

func (d *Drain) drainTargets(center Vec3, dt float64) {
	damage := d.cfg.DamagePerSecond * dt
	for _, t := range d.space.FindInRadius(center, d.cfg.Radius, d.cfg.Filter) {
		if t == nil || !t.Valid() {
			continue
		}
		t.TakeDamage(damage)
		d.player.Heal(damage * d.cfg.HealPercentage)

		e, ok := d.reg.get(t.ID())
		if !ok {
			e = d.reg.put(t, d.links.Create())
			if d.OnLink != nil {
				d.OnLink(t.ID())
			}
		}
		e.target = t
		if e.link != nil {
			e.link.SetEndpoints(center, t.Position())
		}
	}
}

// sweep releases beams whose target died or walked out of range.
func (d *Drain) sweep(center Vec3) {
	for _, id := range d.reg.ids() {
		e, _ := d.reg.get(id)
		if e.target.Valid() && d.space.InRadius(center, d.cfg.Radius, d.cfg.Filter, e.target) {
			continue
		}
		d.release(id)
	}
}

func (d *Drain) release(id TargetID) {
	e, ok := d.reg.remove(id)
	if !ok {
		return
	}
	d.links.Destroy(e.link)
	if d.OnRelease != nil {
		d.OnRelease(id)
	}
}

// Cancel ends the channel early, releasing everything Tick would release on
// expiry. It reports false when the drain was not running.
func (d *Drain) Cancel() bool {
	if d == nil || d.state != StateActive {
		return false
	}
	d.finish(true)
	return true
}

func (d *Drain) finish(cancelled bool) {
	if d.effect != nil {
		d.effect.Stop()
	}
	for _, e := range d.reg.drain() {
		d.links.Destroy(e.link)
		if d.OnRelease != nil {
			d.OnRelease(e.target.ID())
		}
	}
	d.state = StateInactive
	if d.OnEnd != nil {
		d.OnEnd(cancelled)
	}
}

func (d *Drain) Active() bool {
	return d != nil && d.state == StateActive
}

func (d *Drain) State() State {
	if d == nil {
		return StateInactive
	}
	return d.state
}

// Elapsed returns seconds spent in the current (or last) activation.
func (d *Drain) Elapsed() float64 {
	if d == nil {
		return 0
	}
	return d.elapsed
}

// Remaining returns seconds left in the current activation, 0 when inactive.
func (d *Drain) Remaining() float64 {
	if !d.Active() {
		return 0
	}
	return math.Max(0, d.cfg.Duration-d.elapsed)
}

// LinkCount returns the number of live beams.
func (d *Drain) LinkCount() int {
	if d == nil {
		return 0
	}
	return d.reg.len()
}

// Linked reports whether a beam exists for id.
func (d *Drain) Linked(id TargetID) bool {
	if d == nil {
		return false
	}
	_, ok := d.reg.get(id)
	return ok
}

// Config returns the tuning the next activation will use.
func (d *Drain) Config() Config {
	if d == nil {
		return Config{}
	}
	return d.pending
}

// SetConfig replaces the tuning. A running channel keeps the values it
// started with.
func (d *Drain) SetConfig(cfg Config) {
	if d == nil {
		return
	}
	d.pending = cfg
}
