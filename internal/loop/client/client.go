// Package client runs one terminal game: it reads keys, steps a private
// simulation and paints it with half-block characters.
package client

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/input"
	loopconfig "github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/loop/server"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/sim"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	game         *sim.State
	hud          *hudValues
	sprites      object.SpriteSource
	stars        []draw.Point // Background used when a level has no sprite
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Tuning       config.Tuning
	Seed         int64               // Zero picks a time-based seed
	Sprites      object.SpriteSource // Nil draws plain shapes
	Logger       *log.Logger
}

// NewClient creates a client registered with gs.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	username := opts.Username
	if len(username) > loopconfig.MaxUsernameLength {
		username = username[:loopconfig.MaxUsernameLength]
	}
	handle := gs.RegisterClient(username)

	tuning := opts.Tuning
	hud := &hudValues{}
	game := sim.New(tuning, rng, hud)

	stars := make([]draw.Point, loopconfig.FallbackStars)
	for i := range stars {
		stars[i] = draw.Point{X: rng.Float64() * tuning.Width, Y: rng.Float64() * tuning.Height}
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, tuning)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, tuning.Width, tuning.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		state:        NewClientState(),
		game:         game,
		hud:          hud,
		sprites:      opts.Sprites,
		stars:        stars,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		username:     username,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("user", username, "session", handle.ID),
	}
}

// Run starts the client loop. Blocks until the client quits, goes idle,
// loses its input or the server shuts down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer c.server.UnregisterClient(c.handle.ID)

	// One simulation tick per frame keeps tick-based delays in wall-clock time.
	frameTime := c.game.Tuning().TickTime()
	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := c.frame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	c.logger.Info("Session ended", "score", c.game.Score(), "level", c.game.Level())
	draw.ClearScreen(c.writer)
	return nil
}

// frame runs one iteration of the client loop.
func (c *Client) frame() error {
	c.processInput()
	c.processServerEvents()
	c.updateScreen()

	switch c.state.GameState {
	case GameStateStart:
		c.updateStartState()
	case GameStatePlaying:
		c.updatePlayingState()
	case GameStateShutdown:
		c.updateShutdownState()
	}

	return c.drawFrame()
}

// processInput reads the keys pressed since the last frame.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > loopconfig.InactivityDisconnectUser {
		c.logger.Info("Disconnecting idle session")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > loopconfig.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit || c.state.Input.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = loopconfig.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, c.game.Tuning())

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// fitTermSize clamps terminal dimensions to the max render resolution,
// keeps the playfield's aspect ratio and computes the centering offset.
func fitTermSize(termWidth, termHeight int, t config.Tuning) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	return draw.FitCanvas(termWidth, termHeight,
		loopconfig.MaxTermWidth, loopconfig.MaxTermHeight, t.Width, t.Height)
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	if c.state.Input.Space || c.state.Input.Enter {
		c.startGame()
	}
}

// startGame leaves the title screen with a fresh game.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.game.Restart()
	c.state.GameState = GameStatePlaying
	c.logger.Info("Game started")
}

// updatePlayingState feeds intents to the game and steps it once.
func (c *Client) updatePlayingState() {
	phase := c.game.Phase()
	if phase.Terminal() {
		if c.state.Input.Restart || c.state.Input.Enter {
			input.ResetKeyInput(c.inputStream)
			c.game.Restart()
			c.logger.Info("Game restarted")
		}
		return
	}

	for _, intent := range c.state.Input.Intents() {
		c.game.Apply(intent)
	}
	c.game.Step()

	if next := c.game.Phase(); next != phase {
		c.onPhaseChange(phase, next)
	}
}

func (c *Client) onPhaseChange(from, to sim.Phase) {
	switch to {
	case sim.Transition:
		c.logger.Info("Level up", "level", c.game.Level(), "score", c.game.Score())
	case sim.Victory, sim.GameOver:
		c.logger.Info("Game finished", "result", to, "score", c.game.Score(), "level", c.game.Level())
		c.server.ReportScore(c.handle.ID, c.game.Score(), c.game.Level())
	default:
		c.logger.Debug("Phase changed", "from", from, "to", to)
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
