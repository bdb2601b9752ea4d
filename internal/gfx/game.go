// Package gfx is the windowed frontend: it runs the simulation inside an
// ebiten game loop and draws it with vector shapes and sprite images.
package gfx

import (
	"fmt"
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/ufostrike/internal/asset"
	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/input"
	"github.com/tomz197/ufostrike/internal/sim"
)

const (
	statusTicks = 120 // How long a status line stays up
	starCount   = 100
)

// hudText is the window's copy of the HUD values.
type hudText struct {
	score, level, lives int
	killed, required    int
}

func (h *hudText) ScoreChanged(v int) { h.score = v }
func (h *hudText) LevelChanged(v int) { h.level = v }
func (h *hudText) LivesChanged(v int) { h.lives = v }
func (h *hudText) ProgressChanged(killed, required int) {
	h.killed, h.required = killed, required
}

type star struct {
	x, y, r float32
}

// Game implements ebiten.Game.
type Game struct {
	cfg     config.Tuning
	state   *sim.State
	hud     *hudText
	catalog *asset.Catalog
	images  map[string]*ebiten.Image // Sprite images, built on first draw
	stars   []star
	logger  *log.Logger

	touches   []ebiten.TouchID
	status    string
	statusTTL int
}

// New creates a game ready for ebiten.RunGame. A nil catalog draws plain shapes.
func New(cfg config.Tuning, rng *rand.Rand, catalog *asset.Catalog, logger *log.Logger) *Game {
	hud := &hudText{}
	g := &Game{
		cfg:     cfg,
		hud:     hud,
		state:   sim.New(cfg, rng, hud),
		catalog: catalog,
		images:  make(map[string]*ebiten.Image),
		logger:  logger,
	}
	g.stars = make([]star, starCount)
	for i := range g.stars {
		g.stars[i] = star{
			x: float32(rng.Float64() * cfg.Width),
			y: float32(rng.Float64() * cfg.Height),
			r: float32(rng.Float64() * 2),
		}
	}
	return g
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.statusTTL > 0 {
		g.statusTTL--
	}

	phase := g.state.Phase()
	if phase.Terminal() {
		g.updateFinished()
		return nil
	}

	for _, intent := range g.intents() {
		g.state.Apply(intent)
	}
	g.state.Step()

	if next := g.state.Phase(); next != phase {
		g.logger.Info("Phase changed", "from", phase, "to", next,
			"level", g.state.Level(), "score", g.state.Score())
	}
	return nil
}

// updateFinished handles the victory and game over screens.
func (g *Game) updateFinished() {
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || len(g.touches) > 0 {
		g.state.Restart()
		g.logger.Info("Game restarted")
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyResult()
	}
}

// intents reads the keyboard and touch screen.
func (g *Game) intents() []input.Intent {
	keys := input.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Space: ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	var touch []input.Intent
	for _, id := range g.touches {
		x, _ := ebiten.TouchPosition(id)
		touch = append(touch, input.TouchIntent(float64(x), g.cfg.Width))
	}
	return mergeIntents(keys.Intents(), touch)
}

// mergeIntents combines keyboard and touch intents. The keyboard's idle
// Stop only applies while nothing touches the screen: lifting the last
// finger stops the ship, and a held fire touch keeps its momentum.
func mergeIntents(keys, touch []input.Intent) []input.Intent {
	if len(touch) == 0 {
		return keys
	}
	merged := make([]input.Intent, 0, len(keys)+len(touch))
	for _, in := range keys {
		if in != input.Stop {
			merged = append(merged, in)
		}
	}
	return append(merged, touch...)
}

func (g *Game) copyResult() {
	line := resultLine(g.state.Phase(), g.state.Score(), g.state.Level())
	if err := clipboard.WriteAll(line); err != nil {
		g.logger.Warn("Clipboard unavailable", "err", err)
		g.setStatus("Clipboard unavailable")
		return
	}
	g.setStatus("Result copied to clipboard")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTTL = statusTicks
}

// resultLine formats a finished game for sharing.
func resultLine(phase sim.Phase, score, level int) string {
	verb := "was shot down"
	if phase == sim.Victory {
		verb = "defeated the mothership"
	}
	return fmt.Sprintf("UFO Strike: %s with %d points on level %d", verb, score, level)
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height)
}
