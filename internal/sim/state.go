// Package sim is the shooter's simulation core: entity collections, the
// per-tick step, collision and level progression. It does no I/O; hosts
// drive it one Step per frame and render from its accessors.
package sim

import (
	"math/rand"

	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/input"
	"github.com/tomz197/ufostrike/internal/object"
)

// State is one game in progress. It is not safe for concurrent use.
type State struct {
	cfg    config.Tuning
	screen object.Screen
	rng    *rand.Rand
	hud    HUD

	player     *object.Player
	lasers     []*object.Laser
	ufos       []*object.UFO
	boss       *object.Boss
	bossLasers []*object.BossLaser
	explosions []*object.Explosion

	score int
	level int
	kills int
	tick  uint64

	prog    progression
	hudLast hudCache
}

// New starts a game at level 1 with the first wave spawned. A nil hud is
// replaced with NopHUD.
func New(cfg config.Tuning, rng *rand.Rand, hud HUD) *State {
	if hud == nil {
		hud = NopHUD{}
	}
	s := &State{
		cfg:    cfg,
		screen: object.Screen{Width: cfg.Width, Height: cfg.Height},
		rng:    rng,
		hud:    hud,
	}
	s.reset()
	return s
}

// Restart discards the current game, including any pending level change,
// and starts over at level 1.
func (s *State) Restart() {
	s.reset()
}

func (s *State) reset() {
	s.player = object.NewPlayer(s.screen, s.cfg.Player)
	s.lasers = nil
	s.ufos = nil
	s.boss = nil
	s.bossLasers = nil
	s.explosions = nil
	s.score = 0
	s.level = 1
	s.kills = 0
	s.tick = 0
	s.prog = progression{phase: Playing}
	s.spawnWave()
	s.publish(true)
}

// Apply feeds one player intent into the game. Stop always applies so a
// released key never leaves the ship drifting; the rest are ignored while
// the simulation is paused.
func (s *State) Apply(intent input.Intent) {
	if intent == input.Stop {
		s.player.Steer(0)
		return
	}
	if !s.Active() {
		return
	}
	switch intent {
	case input.MoveLeft:
		s.player.Steer(-1)
	case input.MoveRight:
		s.player.Steer(1)
	case input.Fire:
		s.lasers = append(s.lasers, s.player.Shoot()...)
	}
}

func (s *State) spawnWave() {
	n := s.cfg.Waves.Level1Size
	if s.level >= 2 {
		n = s.cfg.Waves.Level2Size
	}
	s.ufos = append(s.ufos, object.NewWave(object.TierForLevel(s.level), n, s.screen, s.rng)...)
}

// SpawnUFO adds a stationary UFO with its top-left corner at x, y.
func (s *State) SpawnUFO(tier object.Tier, x, y float64) *object.UFO {
	u := object.NewUFO(tier, s.screen, s.rng)
	u.X, u.Y = x, y
	u.VX, u.VY = 0, 0
	s.ufos = append(s.ufos, u)
	return u
}

// FireLaserAt adds a player laser centred on x with its top at y.
func (s *State) FireLaserAt(x, y float64) *object.Laser {
	l := object.NewLaser(x, y, s.cfg.Player.LaserSpeed)
	s.lasers = append(s.lasers, l)
	return l
}

func (s *State) Phase() Phase                    { return s.prog.phase }
func (s *State) Active() bool                    { return s.prog.phase == Playing }
func (s *State) Score() int                      { return s.score }
func (s *State) Level() int                      { return s.level }
func (s *State) Kills() int                      { return s.kills }
func (s *State) Tick() uint64                    { return s.tick }
func (s *State) Screen() object.Screen           { return s.screen }
func (s *State) Tuning() config.Tuning           { return s.cfg }
func (s *State) Player() *object.Player          { return s.player }
func (s *State) Lasers() []*object.Laser         { return s.lasers }
func (s *State) UFOs() []*object.UFO             { return s.ufos }
func (s *State) Boss() *object.Boss              { return s.boss }
func (s *State) BossLasers() []*object.BossLaser { return s.bossLasers }
func (s *State) Explosions() []*object.Explosion { return s.explosions }
