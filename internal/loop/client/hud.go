package client

import "github.com/tomz197/ufostrike/internal/sim"

// hudValues is the terminal's copy of the HUD. The game pushes changes here
// and the renderer reads them every frame.
type hudValues struct {
	score    int
	level    int
	lives    int
	killed   int
	required int
}

var _ sim.HUD = (*hudValues)(nil)

func (h *hudValues) ScoreChanged(score int) { h.score = score }
func (h *hudValues) LevelChanged(level int) { h.level = level }
func (h *hudValues) LivesChanged(lives int) { h.lives = lives }

func (h *hudValues) ProgressChanged(killed, required int) {
	h.killed = killed
	h.required = required
}
