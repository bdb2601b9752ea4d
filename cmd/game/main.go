package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/ufostrike/internal/asset"
	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/loop/client"
	"github.com/tomz197/ufostrike/internal/loop/server"
)

func main() {
	// The terminal belongs to the game while it runs; logs are printed on exit.
	var logs bytes.Buffer
	logger := config.NewLogger(&logs, "ufostrike")

	tuning, err := config.TuningFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid tuning: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	registry := server.NewServer(logger)
	c := client.NewClient(registry, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: config.GetEnv("USER", "pilot"),
		Tuning:   tuning,
		Seed:     config.GetEnvInt64("UFO_SEED", time.Now().UnixNano()),
		Sprites:  asset.Default(logger),
		Logger:   logger,
	})
	runErr := c.Run()

	_ = term.Restore(fd, oldState)
	os.Stderr.Write(logs.Bytes())
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", runErr)
		os.Exit(1)
	}
}
