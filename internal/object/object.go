// Package object defines the shooter's entities and their per-tick rules.
package object

import (
	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Screen is the logical playfield size.
type Screen struct {
	Width  float64
	Height float64
}

// SpriteSource resolves sprite names to drawable masks.
// A missing sprite makes the entity fall back to a solid shape.
type SpriteSource interface {
	Lookup(name string) (draw.Mask, bool)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas  *draw.Canvas // Half-block canvas in logical coordinates
	Sprites SpriteSource // May be nil
}

// Drawable is anything the terminal renderer can draw.
type Drawable interface {
	Draw(ctx DrawContext)
}

// Collider is anything with an axis-aligned hit box.
type Collider interface {
	Bounds() physics.Rect
}

// drawSprite draws the named sprite into r, or fills r when it is unavailable.
func drawSprite(ctx DrawContext, name string, r physics.Rect) {
	if ctx.Sprites != nil {
		if mask, ok := ctx.Sprites.Lookup(name); ok {
			ctx.Canvas.Blit(r.X, r.Y, r.W, r.H, mask)
			return
		}
	}
	ctx.Canvas.FillRect(r.X, r.Y, r.W, r.H)
}

// drawHealthBar draws a bar whose filled length tracks health/maxHealth.
func drawHealthBar(ctx DrawContext, x, y, width float64, health, maxHealth int) {
	if maxHealth <= 0 || health <= 0 {
		return
	}
	pct := float64(health) / float64(maxHealth)
	ctx.Canvas.DrawLine(pt(x, y), pt(x+width*pct, y))
}

func pt(x, y float64) draw.Point {
	return draw.Point{X: x, Y: y}
}
