package object

import (
	"math/rand"

	"github.com/tomz197/ufostrike/internal/physics"
)

// Tier is a UFO difficulty class.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
)

// Per-tier properties.
var (
	ufoSizes = map[Tier]float64{
		Tier1: 60,
		Tier2: 65,
	}
	ufoHealth = map[Tier]int{
		Tier1: 3,
		Tier2: 5,
	}
	ufoSprites = map[Tier][]string{
		Tier1: {"ufo1", "ufo2", "ufo3", "ufo4"},
		Tier2: {"ufo5", "ufo6", "ufo7", "ufo8"},
	}
)

// UFO is a regular enemy.
type UFO struct {
	X, Y      float64
	W, H      float64
	VX, VY    float64
	Tier      Tier
	Health    int
	MaxHealth int
	Sprite    string // Asset name, picked at random from the tier's set
}

// NewUFO creates a UFO at a random spot in the top third of the screen.
// Speeds scale with the tier.
func NewUFO(tier Tier, screen Screen, rng *rand.Rand) *UFO {
	size := ufoSizes[tier]
	health := ufoHealth[tier]
	sprites := ufoSprites[tier]
	scale := float64(tier)

	return &UFO{
		X:         rng.Float64() * (screen.Width - size),
		Y:         rng.Float64() * (screen.Height / 3),
		W:         size,
		H:         size,
		VX:        (rng.Float64()*2 - 1) * (scale*0.5 + 1),
		VY:        rng.Float64()*(scale*0.3) + 0.5,
		Tier:      tier,
		Health:    health,
		MaxHealth: health,
		Sprite:    sprites[rng.Intn(len(sprites))],
	}
}

// TierForLevel maps a wave level to the UFO tier it spawns.
func TierForLevel(level int) Tier {
	if level <= 1 {
		return Tier1
	}
	return Tier2
}

// NewWave creates n UFOs of the given tier. A negative n yields no UFOs.
func NewWave(tier Tier, n int, screen Screen, rng *rand.Rand) []*UFO {
	wave := make([]*UFO, 0, max(n, 0))
	for i := 0; i < n; i++ {
		wave = append(wave, NewUFO(tier, screen, rng))
	}
	return wave
}

// Bounds returns the UFO's hit box.
func (u *UFO) Bounds() physics.Rect {
	return physics.Rect{X: u.X, Y: u.Y, W: u.W, H: u.H}
}

// Center returns the centre of the UFO.
func (u *UFO) Center() (float64, float64) {
	return u.Bounds().Center()
}

// Update moves the UFO, bouncing off the side walls and wrapping to the
// top at a fresh x once it has fallen past the bottom.
func (u *UFO) Update(screen Screen, rng *rand.Rand) {
	u.X += u.VX
	u.Y += u.VY

	if u.X <= 0 || u.X >= screen.Width-u.W {
		u.VX = -u.VX
	}

	if u.Y > screen.Height {
		u.Y = -u.H
		u.X = rng.Float64() * (screen.Width - u.W)
	}
}

// Hit absorbs one laser and reports whether the UFO is destroyed.
func (u *UFO) Hit() bool {
	u.Health--
	return u.Health <= 0
}

// Draw renders the UFO with its health bar.
func (u *UFO) Draw(ctx DrawContext) {
	drawSprite(ctx, u.Sprite, u.Bounds())
	drawHealthBar(ctx, u.X, u.Y-10, u.W, u.Health, u.MaxHealth)
}
