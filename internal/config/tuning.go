package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so TOML files can say "500ms" or "2s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Tuning holds every gameplay constant of the shooter.
type Tuning struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	TickRate int     `toml:"tick_rate"` // Simulation ticks per second

	Player      PlayerTuning      `toml:"player"`
	Waves       WaveTuning        `toml:"waves"`
	Boss        BossTuning        `toml:"boss"`
	Progression ProgressionTuning `toml:"progression"`
}

// PlayerTuning configures the player ship and its lasers.
type PlayerTuning struct {
	Lives         int     `toml:"lives"`
	Speed         float64 `toml:"speed"`          // Pixels per tick while moving
	ShootCooldown int     `toml:"shoot_cooldown"` // Ticks between shots
	ShieldRadius  float64 `toml:"shield_radius"`
	LaserSpeed    float64 `toml:"laser_speed"`
}

// WaveTuning configures UFO waves.
type WaveTuning struct {
	Level1Size int `toml:"level1_size"`
	Level2Size int `toml:"level2_size"`
}

// BossTuning configures the level 3 boss.
type BossTuning struct {
	Health       int `toml:"health"`
	PatternTicks int `toml:"pattern_ticks"` // Ticks spent in each movement pattern
	FireTicks    int `toml:"fire_ticks"`    // Ticks between bursts
}

// ProgressionTuning configures kill thresholds and transition delays.
type ProgressionTuning struct {
	Level1Kills  int      `toml:"level1_kills"`  // Cumulative kills ending level 1
	Level2Kills  int      `toml:"level2_kills"`  // Cumulative kills ending level 2
	VictoryKills int      `toml:"victory_kills"` // Cumulative kills clearing level 3
	ArmDelay     Duration `toml:"arm_delay"`     // Play continues this long after a threshold kill
	PauseDelay   Duration `toml:"pause_delay"`   // Simulation pause on a level change
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Player: PlayerTuning{
			Lives:         15,
			Speed:         8,
			ShootCooldown: 10,
			ShieldRadius:  60,
			LaserSpeed:    10,
		},
		Waves: WaveTuning{
			Level1Size: 5,
			Level2Size: 8,
		},
		Boss: BossTuning{
			Health:       30,
			PatternTicks: 200,
			FireTicks:    30,
		},
		Progression: ProgressionTuning{
			Level1Kills:  100,
			Level2Kills:  200,
			VictoryKills: 250,
			ArmDelay:     Duration{500 * time.Millisecond},
			PauseDelay:   Duration{2 * time.Second},
		},
	}
}

// LoadTuning reads a TOML file over the defaults. Keys missing from the
// file keep their default value.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Width <= 0 || t.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", t.Width, t.Height))
	}
	if t.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", t.TickRate))
	}
	if t.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", t.Player.Lives))
	}
	if t.Player.Speed <= 0 || t.Player.LaserSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player speeds must be positive, got speed=%v laser_speed=%v",
			t.Player.Speed, t.Player.LaserSpeed))
	}
	if t.Player.ShootCooldown < 0 {
		errs = append(errs, fmt.Errorf("player.shoot_cooldown must not be negative, got %d", t.Player.ShootCooldown))
	}
	if t.Waves.Level1Size <= 0 || t.Waves.Level2Size <= 0 {
		errs = append(errs, fmt.Errorf("wave sizes must be positive, got %d/%d",
			t.Waves.Level1Size, t.Waves.Level2Size))
	}
	if t.Boss.Health <= 0 {
		errs = append(errs, fmt.Errorf("boss.health must be positive, got %d", t.Boss.Health))
	}
	if t.Boss.PatternTicks <= 0 || t.Boss.FireTicks <= 0 {
		errs = append(errs, errors.New("boss tick counts must be positive"))
	}
	p := t.Progression
	if p.Level1Kills <= 0 || p.Level2Kills <= p.Level1Kills || p.VictoryKills <= p.Level2Kills {
		errs = append(errs, fmt.Errorf("kill thresholds must increase, got %d/%d/%d",
			p.Level1Kills, p.Level2Kills, p.VictoryKills))
	}
	return errors.Join(errs...)
}

// Ticks converts a wall-clock delay to simulation ticks at the tuned rate.
func (t Tuning) Ticks(d time.Duration) int {
	return int(d * time.Duration(t.TickRate) / time.Second)
}

// TickTime returns the duration of one simulation tick.
func (t Tuning) TickTime() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}
