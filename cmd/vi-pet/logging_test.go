package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-pet/config"
)

func logConfig(t *testing.T, debug bool) config.LogConfig {
	t.Helper()
	return config.LogConfig{Debug: debug, Dir: filepath.Join(t.TempDir(), "logs"), File: "vi-pet.log"}
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	cfg := logConfig(t, false)
	logger, f := setupLogging(cfg)
	if f != nil {
		f.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected discarding logger when debug=false")
	}
	if _, err := os.Stat(cfg.Dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	cfg := logConfig(t, true)
	logger, f := setupLogging(cfg)
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level enabled")
	}
	logger.Debug("pet tick", "hunger", 3)

	data, err := os.ReadFile(filepath.Join(cfg.Dir, cfg.File))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hunger=3") {
		t.Errorf("Expected structured record in log, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	cfg := logConfig(t, true)
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(cfg.Dir, cfg.File)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log: %v", err)
	}

	_, f := setupLogging(cfg)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != cfg.File && strings.HasPrefix(entry.Name(), "vi-pet-") && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_UnwritableDirFallsBack(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.LogConfig{Debug: true, Dir: filepath.Join(blocker, "logs"), File: "vi-pet.log"}
	logger, f := setupLogging(cfg)
	if f != nil {
		f.Close()
		t.Error("Expected no file when the directory cannot be created")
	}
	if logger == nil {
		t.Fatal("Expected a usable logger")
	}
}
