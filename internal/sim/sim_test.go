package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/input"
	"github.com/tomz197/ufostrike/internal/object"
)

type recordingHUD struct {
	scores, levels, lives []int
	progress              [][2]int
}

func (h *recordingHUD) ScoreChanged(v int) { h.scores = append(h.scores, v) }
func (h *recordingHUD) LevelChanged(v int) { h.levels = append(h.levels, v) }
func (h *recordingHUD) LivesChanged(v int) { h.lives = append(h.lives, v) }
func (h *recordingHUD) ProgressChanged(k, r int) {
	h.progress = append(h.progress, [2]int{k, r})
}

func newTestState(t *testing.T) (*State, *recordingHUD) {
	t.Helper()
	hud := &recordingHUD{}
	s := New(config.DefaultTuning(), rand.New(rand.NewSource(1)), hud)
	return s, hud
}

// emptyField removes the random wave so a test controls every UFO.
func emptyField(s *State) {
	s.ufos = nil
}

// killOne destroys a single one-health UFO in one step.
func killOne(t *testing.T, s *State) {
	t.Helper()
	emptyField(s)
	u := s.SpawnUFO(object.Tier1, 300, 200)
	u.Health = 1
	s.FireLaserAt(330, 230)
	kills := s.Kills()
	s.Step()
	require.Equal(t, kills+2, s.Kills())
}

func stepN(s *State, n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func TestNewSurvivesNegativeWaveSize(t *testing.T) {
	cfg := config.DefaultTuning()
	cfg.Waves.Level1Size = -1
	require.Error(t, cfg.Validate())

	var s *State
	require.NotPanics(t, func() { s = New(cfg, rand.New(rand.NewSource(1)), nil) })
	assert.Empty(t, s.UFOs())
}

func TestNewStartsAtLevelOne(t *testing.T) {
	s, hud := newTestState(t)

	assert.Equal(t, Playing, s.Phase())
	assert.True(t, s.Active())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 15, s.Player().Lives)
	require.Len(t, s.UFOs(), 5)
	for _, u := range s.UFOs() {
		assert.Equal(t, object.Tier1, u.Tier)
	}

	assert.Equal(t, []int{0}, hud.scores)
	assert.Equal(t, []int{1}, hud.levels)
	assert.Equal(t, []int{15}, hud.lives)
	assert.Equal(t, [][2]int{{0, 100}}, hud.progress)
}

func TestThreeHitsDestroyTierOneUFO(t *testing.T) {
	s, hud := newTestState(t)
	emptyField(s)
	u := s.SpawnUFO(object.Tier1, 300, 200)
	require.Equal(t, 3, u.Health)

	for hit := 1; hit <= 2; hit++ {
		s.FireLaserAt(330, 230)
		s.Step()
		assert.Equal(t, 3-hit, u.Health)
		assert.Contains(t, s.UFOs(), u)
		assert.Empty(t, s.Lasers(), "laser consumed")
	}

	s.FireLaserAt(330, 230)
	s.Step()

	assert.NotContains(t, s.UFOs(), u)
	assert.Len(t, s.Explosions(), 1)
	assert.Equal(t, 2, s.Score())
	assert.Equal(t, 2, s.Kills())
	assert.Equal(t, []int{0, 2}, hud.scores)
	assert.Equal(t, [2]int{2, 100}, hud.progress[len(hud.progress)-1])
	// The field emptied, so a fresh wave arrived in the same tick.
	assert.Len(t, s.UFOs(), 5)
}

func TestOneLaserHitsOneUFOPerTick(t *testing.T) {
	s, _ := newTestState(t)
	emptyField(s)
	u := s.SpawnUFO(object.Tier2, 300, 200)
	s.FireLaserAt(320, 230)
	s.FireLaserAt(340, 230)

	s.Step()

	assert.Equal(t, 4, u.Health)
	assert.Len(t, s.Lasers(), 1)
}

func TestUFOHitsPlayer(t *testing.T) {
	s, hud := newTestState(t)
	emptyField(s)
	p := s.Player()
	u := s.SpawnUFO(object.Tier1, p.X, p.Y)

	s.Step()

	assert.Equal(t, 14, p.Lives)
	assert.NotContains(t, s.UFOs(), u)
	assert.Len(t, s.Explosions(), 1)
	assert.Equal(t, Playing, s.Phase())
	assert.Equal(t, []int{15, 14}, hud.lives)
}

func TestLastLifeEndsGame(t *testing.T) {
	s, hud := newTestState(t)
	emptyField(s)
	p := s.Player()
	p.Lives = 1
	s.SpawnUFO(object.Tier1, p.X, p.Y)

	s.Step()

	assert.Equal(t, 0, p.Lives)
	assert.Equal(t, GameOver, s.Phase())
	assert.False(t, s.Active())
	assert.Equal(t, 0, hud.lives[len(hud.lives)-1])

	// The simulation is paused: nothing moves any more.
	l := s.FireLaserAt(100, 300)
	s.Step()
	assert.Equal(t, 300.0, l.Y)
	assert.Equal(t, GameOver, s.Phase())
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		before int // Kill counter before the final kill
		want   pendingAction
	}{
		{"level 1 at 99", 1, 97, pendingNone},
		{"level 1 at 100", 1, 98, pendingLevelUp},
		{"level 2 at 199", 2, 197, pendingNone},
		{"level 2 at 200", 2, 198, pendingLevelUp},
		{"level 3 at 249", 3, 247, pendingNone},
		{"level 3 at 250", 3, 248, pendingVictory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestState(t)
			s.level = tt.level
			s.kills = tt.before

			killOne(t, s)

			assert.Equal(t, tt.want, s.prog.pending)
			assert.Equal(t, Playing, s.Phase())
			assert.Equal(t, tt.level, s.Level())
		})
	}
}

func TestLevelUpTiming(t *testing.T) {
	s, hud := newTestState(t)
	s.kills = 98
	killOne(t, s)

	// Play continues through the arming delay.
	stepN(s, 29)
	assert.Equal(t, Playing, s.Phase())
	assert.Equal(t, 1, s.Level())

	s.Step()
	assert.Equal(t, Transition, s.Phase())
	assert.Equal(t, 2, s.Level())
	assert.Empty(t, s.UFOs())
	assert.Empty(t, s.Lasers())
	assert.Empty(t, s.BossLasers())
	assert.Nil(t, s.Boss())
	assert.Equal(t, []int{1, 2}, hud.levels)
	assert.Equal(t, [2]int{0, 100}, hud.progress[len(hud.progress)-1])

	// Intents other than Stop are ignored while paused.
	s.Apply(input.Fire)
	assert.Empty(t, s.Lasers())

	stepN(s, 119)
	assert.Equal(t, Transition, s.Phase())

	s.Step()
	assert.Equal(t, Playing, s.Phase())
	require.Len(t, s.UFOs(), 8)
	for _, u := range s.UFOs() {
		assert.Equal(t, object.Tier2, u.Tier)
	}
}

func TestLevelThreeSpawnsBossWithoutWave(t *testing.T) {
	s, _ := newTestState(t)
	s.level = 2
	s.kills = 198
	killOne(t, s)

	stepN(s, 30)
	require.Equal(t, Transition, s.Phase())
	assert.Equal(t, 3, s.Level())
	require.NotNil(t, s.Boss())

	stepN(s, 120)
	assert.Equal(t, Playing, s.Phase())
	assert.Empty(t, s.UFOs())
	assert.True(t, s.Player().Shield)
}

func TestVictoryByKillCount(t *testing.T) {
	s, _ := newTestState(t)
	s.level = 3
	s.kills = 248
	killOne(t, s)

	stepN(s, 29)
	assert.Equal(t, Playing, s.Phase())
	s.Step()
	assert.Equal(t, Victory, s.Phase())
	assert.True(t, s.Phase().Terminal())
}

func TestBossDefeat(t *testing.T) {
	s, hud := newTestState(t)
	emptyField(s)
	s.level = 3
	s.kills = 210
	s.boss = object.NewBoss(s.Screen(), s.cfg.Boss)
	s.boss.Health = 1
	s.FireLaserAt(400, 100)

	s.Step()

	assert.Nil(t, s.Boss())
	assert.Equal(t, Victory, s.Phase())
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 212, s.Kills())
	assert.Len(t, s.Explosions(), 15+8)
	assert.Equal(t, 100, hud.scores[len(hud.scores)-1])
}

func TestBossTakesOneDamagePerLaser(t *testing.T) {
	s, _ := newTestState(t)
	emptyField(s)
	s.level = 3
	s.boss = object.NewBoss(s.Screen(), s.cfg.Boss)
	s.FireLaserAt(390, 100)
	s.FireLaserAt(410, 100)

	s.Step()

	assert.Equal(t, 28, s.Boss().Health)
	assert.Empty(t, s.Lasers())
	assert.Len(t, s.BossLasers(), 3, "the boss fires on its first tick")
}

func TestShieldAbsorbsUFOsButNotBossLasers(t *testing.T) {
	s, _ := newTestState(t)
	emptyField(s)
	s.level = 3
	p := s.Player()
	cx, _ := p.Bounds().Center()

	// Concentric with the player: inside the shield.
	u := s.SpawnUFO(object.Tier1, p.X-5, p.Y-5)
	s.bossLasers = append(s.bossLasers, object.NewBossLaser(cx, p.Y-2, 0, 5))

	s.Step()

	assert.True(t, p.Shield)
	assert.Equal(t, 14, p.Lives)
	assert.Contains(t, s.UFOs(), u)
	assert.Empty(t, s.BossLasers())
}

func TestBossLaserEndsGame(t *testing.T) {
	s, _ := newTestState(t)
	emptyField(s)
	s.level = 3
	p := s.Player()
	p.Lives = 1
	cx, _ := p.Bounds().Center()
	s.bossLasers = append(s.bossLasers, object.NewBossLaser(cx, p.Y, 0, 5))

	s.Step()

	assert.Equal(t, GameOver, s.Phase())
}

func TestGameOverCancelsPendingLevelUp(t *testing.T) {
	s, _ := newTestState(t)
	s.kills = 98
	killOne(t, s)
	require.Equal(t, pendingLevelUp, s.prog.pending)

	emptyField(s)
	p := s.Player()
	p.Lives = 1
	s.SpawnUFO(object.Tier1, p.X, p.Y)
	s.Step()

	require.Equal(t, GameOver, s.Phase())
	stepN(s, 200)
	assert.Equal(t, GameOver, s.Phase())
	assert.Equal(t, 1, s.Level())
}

func TestRestartResetsEverything(t *testing.T) {
	s, hud := newTestState(t)
	s.kills = 98
	killOne(t, s)
	require.Equal(t, pendingLevelUp, s.prog.pending)
	s.score = 40
	s.Player().Lives = 3
	s.FireLaserAt(100, 300)

	s.Restart()

	assert.Zero(t, s.Tick())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Kills())
	assert.Equal(t, 15, s.Player().Lives)
	assert.Equal(t, Playing, s.Phase())
	assert.Empty(t, s.Lasers())
	assert.Empty(t, s.BossLasers())
	assert.Empty(t, s.Explosions())
	assert.Nil(t, s.Boss())
	require.Len(t, s.UFOs(), 5)
	for _, u := range s.UFOs() {
		assert.Equal(t, u.MaxHealth, u.Health)
	}
	assert.Equal(t, 0, hud.scores[len(hud.scores)-1])
	assert.Equal(t, 15, hud.lives[len(hud.lives)-1])

	// The level-up armed before the restart never fires.
	stepN(s, 200)
	assert.EqualValues(t, 200, s.Tick())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, Playing, s.Phase())
}

func TestRestartDuringTransition(t *testing.T) {
	s, _ := newTestState(t)
	s.kills = 98
	killOne(t, s)
	stepN(s, 30)
	require.Equal(t, Transition, s.Phase())

	s.Restart()
	assert.Equal(t, Playing, s.Phase())

	stepN(s, 150)
	assert.Equal(t, 1, s.Level())
	for _, u := range s.UFOs() {
		assert.Equal(t, object.Tier1, u.Tier)
	}
}

func TestApply(t *testing.T) {
	s, _ := newTestState(t)
	p := s.Player()

	s.Apply(input.MoveLeft)
	assert.Equal(t, -8.0, p.VX)
	s.Apply(input.MoveRight)
	assert.Equal(t, 8.0, p.VX)
	s.Apply(input.Fire)
	assert.Len(t, s.Lasers(), 2)
	s.Apply(input.Fire)
	assert.Len(t, s.Lasers(), 2, "cooldown blocks the second shot")
	s.Apply(input.Intent(42))
	assert.Equal(t, 8.0, p.VX)

	s.prog.phase = GameOver
	s.Apply(input.MoveLeft)
	assert.Equal(t, 8.0, p.VX)
	s.Apply(input.Stop)
	assert.Equal(t, 0.0, p.VX)
}

func TestFieldRefillsWhenCleared(t *testing.T) {
	s, _ := newTestState(t)
	emptyField(s)
	s.Step()
	assert.Len(t, s.UFOs(), 5)

	s.level = 2
	emptyField(s)
	s.Step()
	assert.Len(t, s.UFOs(), 8)
}

func TestExplosionsExpire(t *testing.T) {
	s, _ := newTestState(t)
	emptyField(s)
	s.explosions = append(s.explosions, object.NewExplosion(100, 100, 10, s.rng))
	s.SpawnUFO(object.Tier1, 0, 0)

	stepN(s, 2)
	assert.Len(t, s.Explosions(), 1)
	s.Step()
	assert.Empty(t, s.Explosions())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "game over", GameOver.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
