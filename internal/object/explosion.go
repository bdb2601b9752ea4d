package object

import "math/rand"

// Explosion tuning.
const (
	explosionGrowth    = 2.0
	explosionParticles = 20
)

// Explosion is an expanding ring with a spray of decaying particles.
type Explosion struct {
	X, Y      float64 // Centre
	Radius    float64
	MaxRadius float64
	Active    bool
	Particles []Particle
}

// NewExplosion creates an explosion centred at (x, y). Its ring grows to
// half of size.
func NewExplosion(x, y, size float64, rng *rand.Rand) *Explosion {
	return &Explosion{
		X:         x,
		Y:         y,
		Radius:    1,
		MaxRadius: size / 2,
		Active:    true,
		Particles: newBurst(x, y, explosionParticles, rng),
	}
}

// Update grows the ring and advances the particles. The explosion goes
// inactive once the ring exceeds its maximum radius.
func (e *Explosion) Update() {
	e.Radius += explosionGrowth
	if e.Radius > e.MaxRadius {
		e.Active = false
	}
	for i := range e.Particles {
		e.Particles[i].Update()
	}
}

// Draw renders the ring and every particle still large enough to see.
func (e *Explosion) Draw(ctx DrawContext) {
	ctx.Canvas.StrokeCircle(e.X, e.Y, e.Radius)
	for _, p := range e.Particles {
		if p.Radius < 0.5 {
			continue
		}
		ctx.Canvas.FillCircle(p.X, p.Y, p.Radius)
	}
}
