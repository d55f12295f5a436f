// Package particle provides the decorative particles that drift over the stage.
package particle

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// AlphaDecay is how much opacity a particle loses per tick.
	AlphaDecay = 0.01

	minSize = 1.0
	maxSize = 4.0
)

// Particle is a fading dot. Alpha is derived from Age so that a particle fades
// out after exactly 1/AlphaDecay ticks with no float drift.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  colorful.Color
	Age    int
	Alpha  float64
}

// Tick moves the particle and fades it.
func (p *Particle) Tick() {
	p.X += p.VX
	p.Y += p.VY
	p.Age++
	// The conversion rounds the product, so it cannot be fused into an FMA.
	p.Alpha = 1 - float64(float64(p.Age)*AlphaDecay)
}

// Alive returns true while the particle is still visible.
func (p *Particle) Alive() bool {
	return p.Alpha > 0
}

// System owns every live particle.
type System struct {
	particles     []Particle
	width, height float64
	rng           *rand.Rand
}

// NewSystem creates an empty particle system spawning inside a width x height area.
func NewSystem(width, height float64, rng *rand.Rand) *System {
	return &System{
		width:  width,
		height: height,
		rng:    rng,
	}
}

// Spawn adds a particle at a random position with a random size, drift and hue.
func (s *System) Spawn() Particle {
	p := Particle{
		X:     s.rng.Float64() * s.width,
		Y:     s.rng.Float64() * s.height,
		Size:  minSize + s.rng.Float64()*(maxSize-minSize),
		VX:    s.rng.Float64()*2 - 1,
		VY:    s.rng.Float64()*2 - 1,
		Color: colorful.Hsl(s.rng.Float64()*360, 0.5, 0.5),
		Alpha: 1,
	}
	s.particles = append(s.particles, p)
	return p
}

// Tick advances every particle and drops the ones that have faded out.
func (s *System) Tick() {
	alive := s.particles[:0]
	for i := range s.particles {
		s.particles[i].Tick()
		if s.particles[i].Alive() {
			alive = append(alive, s.particles[i])
		}
	}
	s.particles = alive
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Reset removes every particle.
func (s *System) Reset() {
	s.particles = s.particles[:0]
}
