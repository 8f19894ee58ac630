package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dockeditor/internal/config"
	"dockeditor/internal/game"
	"dockeditor/internal/logging"
)

func main() {
	log := logging.New("main", slog.LevelInfo, os.Stderr)

	// Run from the executable's directory so relative font paths resolve.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Warn("could not change to executable directory", "dir", execDir, "err", err)
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, os.Stderr)
	if err != nil {
		log.Error("setup", "err", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
