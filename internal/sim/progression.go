package sim

import "github.com/tomz197/ufostrike/internal/object"

// Phase is the progression state of a game.
type Phase int

const (
	Playing    Phase = iota // Simulation runs
	Transition              // Paused between levels
	Victory                 // Terminal until restart
	GameOver                // Terminal until restart
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Transition:
		return "transition"
	case Victory:
		return "victory"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Terminal reports whether only a restart leaves the phase.
func (p Phase) Terminal() bool {
	return p == Victory || p == GameOver
}

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingLevelUp
	pendingVictory
)

// progression owns every timer of a game. Timers count simulation ticks, so
// a restart invalidates them by resetting this struct.
type progression struct {
	phase   Phase
	pending pendingAction
	armLeft int // Ticks until the pending action runs
	paused  int // Ticks left in the current Transition
}

// advanceTimers runs once at the start of every Step.
func (s *State) advanceTimers() {
	p := &s.prog
	switch p.phase {
	case Transition:
		p.paused--
		if p.paused <= 0 {
			p.phase = Playing
			if s.level < 3 {
				s.spawnWave()
			}
		}
	case Playing:
		if p.pending == pendingNone {
			return
		}
		p.armLeft--
		if p.armLeft > 0 {
			return
		}
		action := p.pending
		p.pending = pendingNone
		switch action {
		case pendingLevelUp:
			s.enterTransition()
		case pendingVictory:
			s.enterVictory()
		}
	}
}

// checkThresholds arms the delayed level-up or victory once the kill
// counter reaches the current level's threshold.
func (s *State) checkThresholds() {
	p := &s.prog
	if p.phase != Playing || p.pending != pendingNone {
		return
	}
	t := s.cfg.Progression
	action := pendingNone
	switch {
	case s.level == 1 && s.kills >= t.Level1Kills:
		action = pendingLevelUp
	case s.level == 2 && s.kills >= t.Level2Kills:
		action = pendingLevelUp
	case s.level == 3 && s.kills >= t.VictoryKills:
		action = pendingVictory
	}
	if action == pendingNone {
		return
	}
	p.pending = action
	p.armLeft = s.cfg.Ticks(t.ArmDelay.Duration)
}

func (s *State) enterTransition() {
	s.level++
	s.ufos = s.ufos[:0]
	s.lasers = s.lasers[:0]
	s.bossLasers = s.bossLasers[:0]
	if s.level == 3 {
		s.boss = object.NewBoss(s.screen, s.cfg.Boss)
	}
	s.prog.phase = Transition
	s.prog.paused = s.cfg.Ticks(s.cfg.Progression.PauseDelay.Duration)
	s.publish(false)
}

func (s *State) enterVictory() {
	s.prog.phase = Victory
	s.prog.pending = pendingNone
}

func (s *State) enterGameOver() {
	s.prog.phase = GameOver
	s.prog.pending = pendingNone
}

// Progress returns kills made in the current level and the kills it needs.
func (s *State) Progress() (killed, required int) {
	t := s.cfg.Progression
	switch s.level {
	case 1:
		return s.kills, t.Level1Kills
	case 2:
		return s.kills - t.Level1Kills, t.Level2Kills - t.Level1Kills
	default:
		return s.kills - t.Level2Kills, t.VictoryKills - t.Level2Kills
	}
}
