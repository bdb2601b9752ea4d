package object

import "github.com/tomz197/ufostrike/internal/physics"

// Laser dimensions.
const (
	LaserWidth  = 8.0
	LaserHeight = 25.0
)

// Laser is a player projectile travelling straight up.
type Laser struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Active bool // Cleared once the laser leaves the top of the screen
}

// NewLaser creates a laser centred on muzzleX with its top edge at y.
func NewLaser(muzzleX, y, speed float64) *Laser {
	return &Laser{
		X:      muzzleX - LaserWidth/2,
		Y:      y,
		W:      LaserWidth,
		H:      LaserHeight,
		Speed:  speed,
		Active: true,
	}
}

// Bounds returns the laser's hit box.
func (l *Laser) Bounds() physics.Rect {
	return physics.Rect{X: l.X, Y: l.Y, W: l.W, H: l.H}
}

// Update moves the laser up and deactivates it past the top edge.
func (l *Laser) Update() {
	l.Y -= l.Speed
	if l.Y < -l.H {
		l.Active = false
	}
}

// Draw renders the laser.
func (l *Laser) Draw(ctx DrawContext) {
	drawSprite(ctx, "laser", l.Bounds())
}
