package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/ufostrike/internal/asset"
	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/gfx"
)

func main() {
	logger := config.NewLogger(os.Stderr, "ufostrike")

	tuning, err := config.TuningFromEnv()
	if err != nil {
		logger.Error("Invalid tuning", "err", err)
		os.Exit(1)
	}
	seed := config.GetEnvInt64("UFO_SEED", time.Now().UnixNano())
	logger.Info("Starting", "seed", seed, "tick_rate", tuning.TickRate)

	ebiten.SetWindowTitle("UFO Strike")
	ebiten.SetWindowSize(int(tuning.Width), int(tuning.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tuning.TickRate)

	g := gfx.New(tuning, rand.New(rand.NewSource(seed)), asset.Default(logger), logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("Game error", "err", err)
		os.Exit(1)
	}
}
