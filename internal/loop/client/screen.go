package client

import (
	"fmt"
	"time"

	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/sim"
)

var titleArt = []string{
	` _   _ ___ ___    ___ _____ ___ ___ _  _____ `,
	`| | | | __/ _ \  / __|_   _| _ \_ _| |/ / __|`,
	`| |_| | _| (_) | \__ \ | | |   /| || ' <| _| `,
	` \___/|_| \___/  |___/ |_| |_|_\___|_|\_\___|`,
}

var victoryArt = []string{
	`__   _____ ___ _____ ___  _____   __`,
	`\ \ / /_ _/ __|_   _/ _ \| _ \ \ / /`,
	` \ V / | | (__  | || (_) |   /\ V / `,
	`  \_/ |___\___| |_| \___/|_|_\ |_|  `,
}

var gameOverArt = []string{
	`  ___   _   __  __ ___    _____   _____ ___ `,
	` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
	`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
	` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen, phase or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	phase := c.game.Phase()
	if c.state.GameState != c.state.prevGameState ||
		phase != c.state.prevPhase ||
		c.state.isInactive != c.state.wasInactive {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.prevPhase = phase
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if c.state.GameState == GameStatePlaying {
		c.drawWorld()
	}
	c.canvas.Render(c.chunkWriter)

	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawWorld paints the background and every entity onto the canvas.
func (c *Client) drawWorld() {
	ctx := object.DrawContext{Canvas: c.canvas, Sprites: c.sprites}
	t := c.game.Tuning()

	bg := fmt.Sprintf("bg%d", c.game.Level())
	if mask, ok := c.lookup(bg); ok {
		c.canvas.Blit(0, 0, t.Width, t.Height, mask)
	} else {
		for _, s := range c.stars {
			c.canvas.SetFloat(s.X, s.Y)
		}
	}

	c.game.Player().Draw(ctx)
	drawAll(ctx, c.game.Lasers())
	drawAll(ctx, c.game.UFOs())
	if b := c.game.Boss(); b != nil {
		b.Draw(ctx)
	}
	drawAll(ctx, c.game.BossLasers())
	drawAll(ctx, c.game.Explosions())
}

func drawAll[T object.Drawable](ctx object.DrawContext, items []T) {
	for _, it := range items {
		it.Draw(ctx)
	}
}

func (c *Client) lookup(name string) (draw.Mask, bool) {
	if c.sprites == nil {
		return nil, false
	}
	return c.sprites.Lookup(name)
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(termWidth, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(termWidth, centerY)
		return
	}

	switch c.state.GameState {
	case GameStateStart:
		c.drawStartScreen(termWidth, centerY)
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight)
		switch c.game.Phase() {
		case sim.Transition:
			c.drawLevelBanner(termWidth, centerY)
		case sim.Victory:
			c.drawResultScreen(termWidth, centerY, victoryArt, draw.ColorGreen)
		case sim.GameOver:
			c.drawResultScreen(termWidth, centerY, gameOverArt, draw.ColorRed)
		}
	}
}

// writeArt writes a block of lines centred as a whole, returning the row after it.
func (c *Client) writeArt(termWidth, row int, art []string, style string) int {
	width := 0
	for _, line := range art {
		width = max(width, len(line))
	}
	col := max((termWidth-width)/2+1, 1)
	for i, line := range art {
		c.chunkWriter.WriteStyled(col, row+i, style, line)
	}
	return row + len(art)
}

// writeBlinking writes s centred on row during the visible half of the blink
// period and blanks it otherwise.
func (c *Client) writeBlinking(termWidth, row int, s string) {
	if time.Now().UnixMilli()/config.BlinkPeriodMillis%2 != 0 {
		// Let the canvas repaint whatever the text covered.
		c.canvas.MarkTextDirty(max((termWidth-len(s))/2+1, 1), row, len(s))
		return
	}
	c.chunkWriter.WriteCentered(row, termWidth, s)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(termWidth, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerY-2, termWidth, "INACTIVITY WARNING")
	cw.WriteCentered(centerY, termWidth, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	))
	cw.WriteCentered(centerY+2, termWidth, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(termWidth, centerY int) {
	cw := c.chunkWriter
	row := c.writeArt(termWidth, centerY-7, titleArt, draw.StyleBold)

	cw.WriteCentered(row+1, termWidth, "~ Defend the planet. Three levels. One boss. ~")

	controlsY := row + 3
	cw.WriteCentered(controlsY, termWidth, "Controls")
	controlLines := []string{
		"A D / < >  . . .  Move",
		"SPACE  . . . . .  Fire",
		"R  . . . . . . Restart",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteCentered(controlsY+1+i, termWidth, line)
	}

	c.writeBlinking(termWidth, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	if n := c.server.Sessions(); n > 1 {
		online := fmt.Sprintf("%d pilots online", n)
		cw.WriteStyled((termWidth-len(online))/2+1, controlsY+len(controlLines)+4, draw.StyleDim, online)
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (since we don't clear every frame).
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	cw := c.chunkWriter
	h := c.hud

	scoreText := fmt.Sprintf("Score: %-6d Level: %d", h.score, h.level)
	cw.WriteAt(2, 1, scoreText)

	livesText := fmt.Sprintf("Lives: %-3d", h.lives)
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)

	progressText := fmt.Sprintf("Kills: %3d/%-3d", max(h.killed, 0), h.required)
	cw.WriteAt(2, termHeight, progressText)

	if b := c.game.Boss(); b != nil {
		bossText := fmt.Sprintf("Boss: %-9s", b.Pattern)
		cw.WriteAt(termWidth-len(bossText)-1, termHeight, bossText)
	}
}

// drawLevelBanner announces the next level while the game is paused.
func (c *Client) drawLevelBanner(termWidth, centerY int) {
	cw := c.chunkWriter
	cw.WriteStyled((termWidth-9)/2+1, centerY-1, draw.StyleBold+draw.ColorYellow,
		fmt.Sprintf("LEVEL %-3d", c.game.Level()))
	if c.game.Boss() != nil {
		cw.WriteCentered(centerY+1, termWidth, "The mothership approaches. Shield online.")
	} else {
		cw.WriteCentered(centerY+1, termWidth, "A tougher wave is inbound.")
	}
}

// drawResultScreen draws the victory or game over overlay with the leaderboard.
func (c *Client) drawResultScreen(termWidth, centerY int, art []string, style string) {
	cw := c.chunkWriter
	row := c.writeArt(termWidth, centerY-8, art, draw.StyleBold+style)

	cw.WriteCentered(row+1, termWidth, fmt.Sprintf("Score: %d   Level: %d", c.game.Score(), c.game.Level()))

	row += 3
	top := c.server.TopScores()
	if len(top) > 0 {
		cw.WriteStyled((termWidth-10)/2+1, row, draw.StyleBold+draw.ColorCyan, "Top pilots")
		for i, e := range top {
			line := fmt.Sprintf("%d. %-*s %6d  L%d", i+1, config.MaxUsernameLength, e.Username, e.Score, e.Level)
			cw.WriteCentered(row+1+i, termWidth, line)
		}
		row += len(top) + 2
	}

	c.writeBlinking(termWidth, row, ">>  Press R to Restart  <<")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(termWidth, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerY-3, termWidth, "SERVER SHUTTING DOWN")
	cw.WriteCentered(centerY-1, termWidth, "The server is restarting for maintenance.")
	cw.WriteCentered(centerY, termWidth, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	cw.WriteCentered(centerY+2, termWidth, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	cw.WriteCentered(centerY+4, termWidth, "Press Q to disconnect now")
}
