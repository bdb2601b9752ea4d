package object

import (
	"math"

	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Pattern is one of the boss's movement modes.
type Pattern int

const (
	PatternHorizontal Pattern = iota
	PatternCircular
	PatternZigzag
	patternCount
)

func (p Pattern) String() string {
	switch p {
	case PatternHorizontal:
		return "horizontal"
	case PatternCircular:
		return "circular"
	case PatternZigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}

// Boss geometry and motion constants.
const (
	BossSize         = 100.0
	bossStartY       = 50.0
	bossSpeed        = 2.0
	bossAnchorY      = 80.0
	circleAmplitudeX = 150.0
	circleAmplitudeY = 50.0
	circlePeriod     = 30.0
	zigzagAmplitude  = 30.0
	zigzagPeriod     = 10.0
)

// Boss is the level 3 mothership.
type Boss struct {
	X, Y         float64
	W, H         float64
	VX           float64
	Health       int
	MaxHealth    int
	Pattern      Pattern
	PatternTimer int // Ticks spent in the current pattern
	Cooldown     int // Ticks until the next burst

	patternTicks int
	fireTicks    int
}

// NewBoss creates the boss at the top centre of the screen.
func NewBoss(screen Screen, t config.BossTuning) *Boss {
	return &Boss{
		X:            screen.Width/2 - BossSize/2,
		Y:            bossStartY,
		W:            BossSize,
		H:            BossSize,
		VX:           bossSpeed,
		Health:       t.Health,
		MaxHealth:    t.Health,
		Pattern:      PatternHorizontal,
		patternTicks: t.PatternTicks,
		fireTicks:    t.FireTicks,
	}
}

// Bounds returns the boss's hit box.
func (b *Boss) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Update advances the movement pattern and the firing timer. It returns
// the lasers fired this tick, if any.
func (b *Boss) Update(screen Screen) []*BossLaser {
	b.PatternTimer++
	if b.PatternTimer >= b.patternTicks {
		b.Pattern = (b.Pattern + 1) % patternCount
		b.PatternTimer = 0
	}

	t := float64(b.PatternTimer)
	switch b.Pattern {
	case PatternHorizontal:
		b.X += b.VX
		b.bounce(screen)
	case PatternCircular:
		b.X = screen.Width/2 - b.W/2 + math.Sin(t/circlePeriod)*circleAmplitudeX
		b.Y = bossAnchorY + math.Cos(t/circlePeriod)*circleAmplitudeY
	case PatternZigzag:
		b.X += b.VX
		b.Y = bossAnchorY + math.Sin(t/zigzagPeriod)*zigzagAmplitude
		b.bounce(screen)
	}

	b.Cooldown--
	if b.Cooldown <= 0 {
		b.Cooldown = b.fireTicks
		return b.burst()
	}
	return nil
}

func (b *Boss) bounce(screen Screen) {
	if b.X <= 0 || b.X >= screen.Width-b.W {
		b.VX = -b.VX
	}
}

// burst fires three lasers from the bottom centre: one straight down and
// two diagonals.
func (b *Boss) burst() []*BossLaser {
	cx := b.X + b.W/2
	bottom := b.Y + b.H
	return []*BossLaser{
		NewBossLaser(cx, bottom, 0, 5),
		NewBossLaser(cx, bottom, 2, 4),
		NewBossLaser(cx, bottom, -2, 4),
	}
}

// Hit absorbs one laser and reports whether the boss is destroyed.
func (b *Boss) Hit() bool {
	b.Health--
	return b.Health <= 0
}

// Draw renders the boss and its wide health bar along the top of the screen.
func (b *Boss) Draw(ctx DrawContext) {
	drawSprite(ctx, "ufo900", b.Bounds())
	barWidth := b.W * 1.5
	barX := ctx.Canvas.LogicalWidth()/2 - barWidth/2
	drawHealthBar(ctx, barX, 20, barWidth, b.Health, b.MaxHealth)
}
