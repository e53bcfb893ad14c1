package component

import "image/color"

// ParticleEmitter spawns particles around its entity while Playing.
type ParticleEmitter struct {
	Playing bool
	// Rate in particles per second.
	Rate float64
	// Speed in world units per second.
	Speed      float64
	LifeFrames int
	Radius     float64
	Color      color.Color

	accum float64
}

// Accumulate adds dt*Rate to the spawn budget and returns how many whole
// particles are due.
func (p *ParticleEmitter) Accumulate(dt float64) int {
	if p == nil || !p.Playing || p.Rate <= 0 || dt <= 0 {
		return 0
	}
	p.accum += dt * p.Rate
	n := int(p.accum)
	p.accum -= float64(n)
	return n
}

// Reset drops any partial spawn budget.
func (p *ParticleEmitter) Reset() {
	if p != nil {
		p.accum = 0
	}
}

var ParticleEmitterComponent = NewComponent[ParticleEmitter]()

// Particle is one emitted mote; it fades out over MaxFrames.
type Particle struct {
	VX        float64
	VY        float64
	Frames    int
	MaxFrames int
	Radius    float64
	Color     color.Color
}

var ParticleComponent = NewComponent[Particle]()
