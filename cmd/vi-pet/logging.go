package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/vi-pet/config"
)

// maxLogSize triggers rotation of the previous run's log on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging returns the process logger
// The terminal owns stdout and stderr, so debug output goes to a file and
// is discarded otherwise. The returned file is nil when nothing was opened.
func setupLogging(cfg config.LogConfig) (*slog.Logger, *os.File) {
	if !cfg.Debug {
		return slog.New(slog.DiscardHandler), nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return slog.New(slog.DiscardHandler), nil
	}

	path := filepath.Join(cfg.Dir, cfg.File)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(cfg.File)
		base := cfg.File[:len(cfg.File)-len(ext)]
		rotated := filepath.Join(cfg.Dir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.DiscardHandler), nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("logging started", "pid", os.Getpid())
	return logger, f
}
