// Package config centralizes the timing and layout constants of the terminal hosts.
package config

import "time"

// Render limits. Larger terminals get a centred canvas of at most this size.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Player
const (
	MaxUsernameLength = 16 // Maximum display length for player usernames
)

// Leaderboard
const (
	LeaderboardSize = 5
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownWait           = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering. Frames follow the tuned simulation tick rate.
const (
	BlinkPeriodMillis = 600 // Prompt blink half-period
	FallbackStars     = 60  // Stars drawn when a level has no background sprite
)
