package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
	"github.com/tomz197/ufostrike/internal/sim"
)

var (
	colorSpace     = colornames.Black
	colorStar      = colornames.White
	colorPlayer    = colornames.Deepskyblue
	colorLaser     = colornames.Lime
	colorBossLaser = colornames.Orangered
	colorShield    = colornames.Aqua
	colorBoss      = colornames.Crimson
	colorHealth    = colornames.Limegreen
	colorHealthBg  = colornames.Darkred
	colorBlast     = colornames.Orange
	colorTier      = map[object.Tier]color.RGBA{
		object.Tier1: colornames.Mediumpurple,
		object.Tier2: colornames.Orchid,
	}
)

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorSpace)
	g.drawBackground(screen)

	s := g.state
	g.drawPlayer(screen, s.Player())
	for _, l := range s.Lasers() {
		g.drawSprite(screen, "laser", l.Bounds(), colorLaser)
	}
	for _, u := range s.UFOs() {
		g.drawSprite(screen, u.Sprite, u.Bounds(), colorTier[u.Tier])
		healthBar(screen, u.X, u.Y-10, u.W, 5, u.Health, u.MaxHealth)
	}
	if b := s.Boss(); b != nil {
		g.drawSprite(screen, "ufo900", b.Bounds(), colorBoss)
		w := b.W * 1.5
		healthBar(screen, g.cfg.Width/2-w/2, 20, w, 10, b.Health, b.MaxHealth)
	}
	for _, l := range s.BossLasers() {
		vector.FillRect(screen, float32(l.X), float32(l.Y), float32(l.W), float32(l.H), colorBossLaser, false)
	}
	for _, e := range s.Explosions() {
		drawExplosion(screen, e)
	}

	g.drawHUD(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	name := fmt.Sprintf("bg%d", g.state.Level())
	if img := g.image(name, colornames.Midnightblue); img != nil {
		drawScaled(screen, img, physics.Rect{W: g.cfg.Width, H: g.cfg.Height})
		return
	}
	for _, st := range g.stars {
		vector.FillCircle(screen, st.x, st.y, st.r, colorStar, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *object.Player) {
	g.drawSprite(screen, "player", p.Bounds(), colorPlayer)
	if !p.Shield {
		return
	}
	cx, cy := p.Bounds().Center()
	r := p.ShieldRadius
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 3, colorShield, true)
	for i := 0; i < 8; i++ {
		a := p.ShieldAngle + float64(i)*math.Pi/4
		vector.StrokeLine(screen,
			float32(cx+math.Cos(a)*(r-10)), float32(cy+math.Sin(a)*(r-10)),
			float32(cx+math.Cos(a)*r), float32(cy+math.Sin(a)*r),
			2, colorShield, true)
	}
}

// drawSprite draws the named sprite over r, or a filled rectangle when the
// sprite is missing.
func (g *Game) drawSprite(screen *ebiten.Image, name string, r physics.Rect, clr color.RGBA) {
	if img := g.image(name, clr); img != nil {
		drawScaled(screen, img, r)
		return
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// image returns the sprite as an ebiten image tinted clr, building it once.
func (g *Game) image(name string, clr color.RGBA) *ebiten.Image {
	if g.catalog == nil || !g.catalog.Available(name) {
		return nil
	}
	key := fmt.Sprintf("%s/%02x%02x%02x", name, clr.R, clr.G, clr.B)
	if img, ok := g.images[key]; ok {
		return img
	}
	img := maskImage(g.catalog.Sprite(name), clr)
	g.images[key] = img
	return img
}

func maskImage(mask draw.Mask, clr color.RGBA) *ebiten.Image {
	cols, rows := mask.Size()
	img := ebiten.NewImage(cols, rows)
	img.WritePixels(maskPixels(mask, clr))
	return img
}

// maskPixels converts a mask to RGBA bytes: clr where set, transparent elsewhere.
func maskPixels(mask draw.Mask, clr color.RGBA) []byte {
	cols, rows := mask.Size()
	pix := make([]byte, cols*rows*4)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !mask.At(col, row) {
				continue
			}
			i := (row*cols + col) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = clr.R, clr.G, clr.B, 255
		}
	}
	return pix
}

func drawScaled(screen, img *ebiten.Image, r physics.Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}

func healthBar(screen *ebiten.Image, x, y, w, h float64, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	pct := max(float64(health)/float64(maxHealth), 0)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colorHealthBg, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*pct), float32(h), colorHealth, false)
}

func drawExplosion(screen *ebiten.Image, e *object.Explosion) {
	vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), 2, colorBlast, true)
	for _, p := range e.Particles {
		if p.Radius < 0.5 {
			continue
		}
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}
}

// drawHUD prints the HUD and the phase overlays with the debug font.
func (g *Game) drawHUD(screen *ebiten.Image) {
	h := g.hud
	w := int(g.cfg.Width)
	height := int(g.cfg.Height)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   Level: %d", h.score, h.level), 10, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", h.lives), w-80, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Kills: %d/%d", max(h.killed, 0), h.required), 10, height-20)

	switch g.state.Phase() {
	case sim.Transition:
		centered(screen, w, height/2-10, fmt.Sprintf("LEVEL %d", g.state.Level()))
	case sim.Victory:
		g.drawResult(screen, w, height, "VICTORY")
	case sim.GameOver:
		g.drawResult(screen, w, height, "GAME OVER")
	}

	if g.statusTTL > 0 {
		centered(screen, w, height-40, g.status)
	}
}

func (g *Game) drawResult(screen *ebiten.Image, w, height int, title string) {
	panelW, panelH := float32(320), float32(110)
	px, py := float32(w)/2-panelW/2, float32(height)/2-panelH/2
	vector.FillRect(screen, px, py, panelW, panelH, color.RGBA{A: 200}, false)
	vector.StrokeRect(screen, px, py, panelW, panelH, 2, colorShield, false)

	y := height/2 - 40
	centered(screen, w, y, title)
	centered(screen, w, y+24, fmt.Sprintf("Score: %d", g.state.Score()))
	centered(screen, w, y+48, "R or tap: play again")
	centered(screen, w, y+64, "C: copy result")
}

// centered prints s horizontally centred. The debug font is 6 pixels wide.
func centered(screen *ebiten.Image, w, y int, s string) {
	ebitenutil.DebugPrintAt(screen, s, w/2-len(s)*3, y)
}
