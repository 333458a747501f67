package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/desktop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})

	if err := config.Load(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	if err := desktop.Run(cfg, logger); err != nil {
		if errors.Is(err, desktop.ErrGameOver) {
			logger.Print("Game Over!")
			return
		}
		logger.Fatal("game error", "err", err)
	}
}
