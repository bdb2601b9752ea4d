package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	tun := DefaultTuning()
	require.NoError(t, tun.Validate())
	assert.Equal(t, 15, tun.Player.Lives)
	assert.Equal(t, 30, tun.Ticks(tun.Progression.ArmDelay.Duration))
	assert.Equal(t, 120, tun.Ticks(tun.Progression.PauseDelay.Duration))
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	data := `
tick_rate = 30

[player]
lives = 3

[progression]
pause_delay = "1s"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	tun, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 30, tun.TickRate)
	assert.Equal(t, 3, tun.Player.Lives)
	assert.Equal(t, 8.0, tun.Player.Speed)
	assert.Equal(t, time.Second, tun.Progression.PauseDelay.Duration)
	assert.Equal(t, 30, tun.Ticks(tun.Progression.PauseDelay.Duration))
}

func TestDefaultTuningWritesLoadableFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(DefaultTuning()))
	assert.Contains(t, buf.String(), `arm_delay = "500ms"`)

	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	tun, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tun)
}

func TestLoadTuningRejectsBadThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	data := `
[progression]
level1_kills = 100
level2_kills = 50
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := LoadTuning(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kill thresholds")
}

func TestLoadTuningRejectsUnplayableValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"negative level 1 wave", "[waves]\nlevel1_size = -1\n", "wave sizes"},
		{"empty level 2 wave", "[waves]\nlevel2_size = 0\n", "wave sizes"},
		{"negative cooldown", "[player]\nshoot_cooldown = -1\n", "shoot_cooldown"},
		{"stopped ship", "[player]\nspeed = 0\n", "player speeds"},
		{"backwards lasers", "[player]\nlaser_speed = -10\n", "player speeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

			_, err := LoadTuning(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestZeroCooldownIsValid(t *testing.T) {
	tun := DefaultTuning()
	tun.Player.ShootCooldown = 0
	assert.NoError(t, tun.Validate())
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("UFO_TEST_SEED", "42")
	assert.Equal(t, int64(42), GetEnvInt64("UFO_TEST_SEED", 7))

	t.Setenv("UFO_TEST_SEED", "x")
	assert.Equal(t, int64(7), GetEnvInt64("UFO_TEST_SEED", 7))
	assert.Equal(t, int64(7), GetEnvInt64("UFO_TEST_UNSET", 7))
}

func TestTuningFromEnv(t *testing.T) {
	t.Setenv("UFO_TUNING", "")
	tun, err := TuningFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tun)

	t.Setenv("UFO_TUNING", filepath.Join(t.TempDir(), "missing.toml"))
	_, err = TuningFromEnv()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_LEVEL", "warn")
	logger := NewLogger(&buf, "test")
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")
}
