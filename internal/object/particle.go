package object

import (
	"image/color"
	"math/rand"
)

// particleDecay shrinks particle radius every tick.
const particleDecay = 0.95

// Particle is a fragment thrown out by an explosion.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
}

// newBurst creates count particles at (x, y) with random velocities,
// sizes and fiery colours.
func newBurst(x, y float64, count int, rng *rand.Rand) []Particle {
	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = Particle{
			X:      x,
			Y:      y,
			VX:     (rng.Float64() - 0.5) * 5,
			VY:     (rng.Float64() - 0.5) * 5,
			Radius: rng.Float64()*3 + 1,
			Color: color.RGBA{
				R: uint8(rng.Intn(100) + 155),
				G: uint8(rng.Intn(100)),
				B: uint8(rng.Intn(50)),
				A: 255,
			},
		}
	}
	return particles
}

// Update moves the particle and shrinks it.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Radius *= particleDecay
}
