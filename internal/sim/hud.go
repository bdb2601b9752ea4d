package sim

// HUD receives the values a heads-up display shows. The simulation calls
// each hook only when its value changes, plus once on New and Restart.
type HUD interface {
	ScoreChanged(score int)
	LevelChanged(level int)
	LivesChanged(lives int)
	ProgressChanged(killed, required int)
}

// NopHUD ignores every update.
type NopHUD struct{}

func (NopHUD) ScoreChanged(int)         {}
func (NopHUD) LevelChanged(int)         {}
func (NopHUD) LivesChanged(int)         {}
func (NopHUD) ProgressChanged(int, int) {}

// hudCache remembers the last values pushed so hooks fire on change only.
type hudCache struct {
	score, level, lives int
	killed, required    int
	primed              bool
}

// publish pushes the state's HUD values, skipping unchanged ones unless force is set.
func (s *State) publish(force bool) {
	c := &s.hudLast
	force = force || !c.primed
	c.primed = true

	if force || c.score != s.score {
		c.score = s.score
		s.hud.ScoreChanged(s.score)
	}
	if force || c.level != s.level {
		c.level = s.level
		s.hud.LevelChanged(s.level)
	}
	if lives := s.player.Lives; force || c.lives != lives {
		c.lives = lives
		s.hud.LivesChanged(lives)
	}
	killed, required := s.Progress()
	if force || c.killed != killed || c.required != required {
		c.killed, c.required = killed, required
		s.hud.ProgressChanged(killed, required)
	}
}
