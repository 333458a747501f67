package main

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/loop"
	"golang.org/x/term"
)

func main() {
	// The terminal is in raw mode while playing, so logs go to a file or nowhere.
	logger, closeLog := newLogger(config.GetEnv("ASTEROIDS_LOG_FILE", ""))
	defer closeLog()

	if err := config.Load(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal("failed to enable raw mode", "err", err)
	}

	reader := bufio.NewReader(os.Stdin)
	result, err := loop.Run(reader, os.Stdout, loop.Options{
		Config: cfg,
		Logger: logger,
	})
	_ = term.Restore(fd, oldState)

	if err != nil {
		log.Error("game error", "err", err)
		closeLog()
		os.Exit(1)
	}
	if result == loop.ResultGameOver {
		log.Print("Game Over!")
	}
}

// newLogger returns a debug logger writing to path, or a discarding one if path is empty.
func newLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal("failed to open log file", "path", path, "err", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "asteroids",
	})
	return logger, func() { _ = f.Close() }
}
