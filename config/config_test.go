package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-pet.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsMatchDesktopPet(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Motion.Tick != 50*time.Millisecond || cfg.Needs.Tick != time.Second {
		t.Errorf("Unexpected tick periods %v / %v", cfg.Motion.Tick, cfg.Needs.Tick)
	}
	if cfg.Needs.MaxHunger != 100 || cfg.Needs.MaxLoneliness != 300 {
		t.Errorf("Unexpected ceilings %d / %d", cfg.Needs.MaxHunger, cfg.Needs.MaxLoneliness)
	}
	if cfg.Pet.Width != 120 || cfg.Pet.Height != 120 {
		t.Errorf("Unexpected sprite %dx%d", cfg.Pet.Width, cfg.Pet.Height)
	}
	if err := DefaultTerminal().Validate(); err != nil {
		t.Errorf("Terminal defaults invalid: %v", err)
	}
}

func TestLoadMergesOverBase(t *testing.T) {
	path := writeConfig(t, `
motion:
  tick: 20ms
  speed: 2.5
needs:
  max_hunger: 30
anchor:
  hook: false
`)
	cfg, err := Load(path, DefaultTerminal())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Motion.Tick != 20*time.Millisecond {
		t.Errorf("Expected 20ms motion tick, got %v", cfg.Motion.Tick)
	}
	if cfg.Motion.Speed != 2.5 {
		t.Errorf("Expected speed 2.5, got %v", cfg.Motion.Speed)
	}
	if cfg.Needs.MaxHunger != 30 {
		t.Errorf("Expected max_hunger 30, got %d", cfg.Needs.MaxHunger)
	}
	if cfg.Needs.MaxLoneliness != 300 {
		t.Errorf("Expected untouched max_loneliness 300, got %d", cfg.Needs.MaxLoneliness)
	}
	if cfg.Anchor.Hook {
		t.Error("Expected hook disabled")
	}
	if cfg.Pet.Width != 12 {
		t.Errorf("Expected terminal width 12 from base, got %d", cfg.Pet.Width)
	}
}

func TestLoadDoesNotMutateBase(t *testing.T) {
	base := Default()
	path := writeConfig(t, "needs:\n  max_hunger: 7\n")
	if _, err := Load(path, base); err != nil {
		t.Fatal(err)
	}
	if base.Needs.MaxHunger != 100 {
		t.Errorf("Expected base untouched, got %d", base.Needs.MaxHunger)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := writeConfig(t, "needs:\n  max_loneliness: 42\n")
	t.Setenv(EnvConfigPath, path)
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Needs.MaxLoneliness != 42 {
		t.Errorf("Expected 42 from env config, got %d", cfg.Needs.MaxLoneliness)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
motion:
  speed: 0
  pause_min_ticks: 60
  pause_max_ticks: 20
`)
	_, err := Load(path, nil)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "motion: [unclosed")
	if _, err := Load(path, nil); err == nil {
		t.Error("Expected parse error")
	}
}

func TestEngineConversions(t *testing.T) {
	cfg := Default()
	pc := cfg.PetConfig()
	if pc.Width != 120 || pc.MaxLoneliness != 300 || pc.PauseMax != 60 {
		t.Errorf("Unexpected pet config %+v", pc)
	}
	iv := cfg.Intervals()
	if iv.Motion != 50*time.Millisecond || iv.Decay != time.Second || iv.Animation != 200*time.Millisecond {
		t.Errorf("Unexpected intervals %+v", iv)
	}
}
