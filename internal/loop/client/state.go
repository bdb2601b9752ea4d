package client

import (
	"time"

	"github.com/tomz197/ufostrike/internal/input"
	"github.com/tomz197/ufostrike/internal/sim"
)

// GameState represents the current screen for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // A game is running; sim.Phase picks the overlay
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection state that is not part of the game itself.
type ClientState struct {
	Input         input.Input
	GameState     GameState     // This client's screen
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state

	// Previous-frame values used to detect transitions that need a full redraw.
	prevGameState GameState
	prevPhase     sim.Phase
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}
