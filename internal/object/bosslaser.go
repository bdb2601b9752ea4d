package object

import "github.com/tomz197/ufostrike/internal/physics"

// Boss laser dimensions.
const (
	BossLaserWidth  = 10.0
	BossLaserHeight = 20.0
)

// BossLaser is a projectile fired by the boss.
type BossLaser struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Active bool
}

// NewBossLaser creates a boss laser centred on muzzleX.
func NewBossLaser(muzzleX, y, vx, vy float64) *BossLaser {
	return &BossLaser{
		X:      muzzleX - BossLaserWidth/2,
		Y:      y,
		W:      BossLaserWidth,
		H:      BossLaserHeight,
		VX:     vx,
		VY:     vy,
		Active: true,
	}
}

// Bounds returns the laser's hit box.
func (l *BossLaser) Bounds() physics.Rect {
	return physics.Rect{X: l.X, Y: l.Y, W: l.W, H: l.H}
}

// Update moves the laser and deactivates it once it leaves the screen.
func (l *BossLaser) Update(screen Screen) {
	l.X += l.VX
	l.Y += l.VY
	if l.Y > screen.Height || l.X < 0 || l.X > screen.Width {
		l.Active = false
	}
}

// Draw renders the laser as a solid bar.
func (l *BossLaser) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(l.X, l.Y, l.W, l.H)
}
