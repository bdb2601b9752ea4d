package object

import (
	"math"

	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Player dimensions and muzzle offsets.
const (
	PlayerSize        = 50.0
	playerBottomGap   = 10.0
	playerMuzzleInset = 10.0
	shieldSpin        = 0.1 // Radians per tick
	shieldSpokes      = 8
)

// Player is the ship at the bottom of the screen.
type Player struct {
	X, Y         float64
	W, H         float64
	VX           float64
	Lives        int
	Cooldown     int // Ticks until the next shot is allowed
	Shield       bool
	ShieldRadius float64
	ShieldAngle  float64 // Spoke rotation, cosmetic only

	speed         float64
	cooldownTicks int
	laserSpeed    float64
}

// NewPlayer creates a player centred at the bottom of the screen.
func NewPlayer(screen Screen, t config.PlayerTuning) *Player {
	return &Player{
		X:             screen.Width/2 - PlayerSize/2,
		Y:             screen.Height - PlayerSize - playerBottomGap,
		W:             PlayerSize,
		H:             PlayerSize,
		Lives:         t.Lives,
		ShieldRadius:  t.ShieldRadius,
		speed:         t.Speed,
		cooldownTicks: t.ShootCooldown,
		laserSpeed:    t.LaserSpeed,
	}
}

// Bounds returns the player's hit box.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Steer sets horizontal velocity: -1 left, 1 right, 0 stop.
func (p *Player) Steer(dir float64) {
	p.VX = dir * p.speed
}

// Update moves the ship, runs down the shot cooldown and raises the
// shield on the boss level.
func (p *Player) Update(level int, screen Screen) {
	p.X = physics.Clamp(p.X+p.VX, 0, screen.Width-p.W)

	if p.Cooldown > 0 {
		p.Cooldown--
	}

	p.Shield = level == 3
	if p.Shield {
		p.ShieldAngle += shieldSpin
	}
}

// Shoot fires a pair of lasers from the wing tips if the cooldown allows.
func (p *Player) Shoot() []*Laser {
	if p.Cooldown > 0 {
		return nil
	}
	p.Cooldown = p.cooldownTicks
	return []*Laser{
		NewLaser(p.X+playerMuzzleInset, p.Y, p.laserSpeed),
		NewLaser(p.X+p.W-playerMuzzleInset, p.Y, p.laserSpeed),
	}
}

// Draw renders the ship and, when raised, the shield ring with its spokes.
func (p *Player) Draw(ctx DrawContext) {
	drawSprite(ctx, "player", p.Bounds())

	if !p.Shield {
		return
	}
	cx, cy := p.Bounds().Center()
	ctx.Canvas.StrokeCircle(cx, cy, p.ShieldRadius)
	for i := 0; i < shieldSpokes; i++ {
		a := p.ShieldAngle + float64(i)*math.Pi/4
		inner := p.ShieldRadius - 10
		ctx.Canvas.DrawLine(
			pt(cx+math.Cos(a)*inner, cy+math.Sin(a)*inner),
			pt(cx+math.Cos(a)*p.ShieldRadius, cy+math.Sin(a)*p.ShieldRadius),
		)
	}
}
