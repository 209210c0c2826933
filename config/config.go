// Package config loads vi-pet tunables.
//
// Defaults come from Default (desktop pixel units) or DefaultTerminal
// (terminal cell units). An optional YAML file given with --config or
// VI_PET_CONFIG is merged over the chosen defaults; fields it omits keep
// their default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/parameter"
)

// EnvConfigPath names the environment variable consulted when no --config flag is given
const EnvConfigPath = "VI_PET_CONFIG"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full set of tunables
type Config struct {
	Motion MotionConfig `yaml:"motion"`
	Needs  NeedsConfig  `yaml:"needs"`
	Pet    PetConfig    `yaml:"pet"`
	Anchor AnchorConfig `yaml:"anchor"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// MotionConfig configures the horizontal walk.
type MotionConfig struct {
	// Tick is the motion tick period; the anchor is polled at the same rate.
	Tick time.Duration `yaml:"tick"`

	// Speed is the advance per tick in display units.
	Speed float64 `yaml:"speed"`

	// PauseMinTicks and PauseMaxTicks bound the rest period, [min, max).
	PauseMinTicks int `yaml:"pause_min_ticks"`
	PauseMaxTicks int `yaml:"pause_max_ticks"`
}

// NeedsConfig configures need decay.
type NeedsConfig struct {
	Tick          time.Duration `yaml:"tick"`
	MaxHunger     int           `yaml:"max_hunger"`
	MaxLoneliness int           `yaml:"max_loneliness"`
}

// PetConfig configures the sprite box.
type PetConfig struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	AnimationTick time.Duration `yaml:"animation_tick"`
	Frames        int           `yaml:"frames"`
}

// AnchorConfig configures taskbar tracking.
type AnchorConfig struct {
	// Tolerance is the working-area gap treated as "no taskbar".
	Tolerance int `yaml:"tolerance"`

	// Hook enables the asynchronous change notification.
	// Polling on every motion tick runs regardless.
	Hook bool `yaml:"hook"`

	// FallbackWidth and FallbackHeight describe the display used before any successful query.
	FallbackWidth  int `yaml:"fallback_width"`
	FallbackHeight int `yaml:"fallback_height"`
}

// AudioConfig configures sound cues.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig configures the debug log file.
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
	File  string `yaml:"file"`
}

// Default returns desktop values in pixels
func Default() *Config {
	return &Config{
		Motion: MotionConfig{
			Tick:          parameter.MotionTickInterval,
			Speed:         parameter.MotionSpeed,
			PauseMinTicks: parameter.PauseMinTicks,
			PauseMaxTicks: parameter.PauseMaxTicks,
		},
		Needs: NeedsConfig{
			Tick:          parameter.DecayTickInterval,
			MaxHunger:     parameter.MaxHunger,
			MaxLoneliness: parameter.MaxLoneliness,
		},
		Pet: PetConfig{
			Width:         parameter.PetWidth,
			Height:        parameter.PetHeight,
			AnimationTick: parameter.AnimationTickInterval,
			Frames:        parameter.AnimationFrames,
		},
		Anchor: AnchorConfig{
			Tolerance:      parameter.AnchorTolerance,
			Hook:           true,
			FallbackWidth:  parameter.FallbackScreenWidth,
			FallbackHeight: parameter.FallbackScreenHeight,
		},
		Audio: AudioConfig{Enabled: true},
		Log: LogConfig{
			Dir:  "logs",
			File: "vi-pet.log",
		},
	}
}

// DefaultTerminal returns Default scaled to terminal cells
func DefaultTerminal() *Config {
	cfg := Default()
	cfg.Motion.Speed = parameter.TerminalMotionSpeed
	cfg.Pet.Width = parameter.TerminalPetWidth
	cfg.Pet.Height = parameter.TerminalPetHeight
	cfg.Anchor.Tolerance = parameter.TerminalTolerance
	cfg.Anchor.FallbackWidth = 80
	cfg.Anchor.FallbackHeight = 24
	return cfg
}

// Load merges the YAML file at path over base and validates the result
// An empty path falls back to $VI_PET_CONFIG; with neither, base is validated and returned
func Load(path string, base *Config) (*Config, error) {
	if base == nil {
		base = Default()
	}
	cfg := *base

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Motion.Tick > 0, "motion.tick must be positive, got %v", c.Motion.Tick)
	check(c.Motion.Speed > 0, "motion.speed must be positive, got %v", c.Motion.Speed)
	check(c.Motion.PauseMinTicks >= 1, "motion.pause_min_ticks must be at least 1, got %d", c.Motion.PauseMinTicks)
	check(c.Motion.PauseMaxTicks > c.Motion.PauseMinTicks, "motion.pause_max_ticks (%d) must exceed pause_min_ticks (%d)", c.Motion.PauseMaxTicks, c.Motion.PauseMinTicks)
	check(c.Needs.Tick > 0, "needs.tick must be positive, got %v", c.Needs.Tick)
	check(c.Needs.MaxHunger >= 1, "needs.max_hunger must be at least 1, got %d", c.Needs.MaxHunger)
	check(c.Needs.MaxLoneliness >= 1, "needs.max_loneliness must be at least 1, got %d", c.Needs.MaxLoneliness)
	check(c.Pet.Width >= 1 && c.Pet.Height >= 1, "pet size must be positive, got %dx%d", c.Pet.Width, c.Pet.Height)
	check(c.Pet.AnimationTick > 0, "pet.animation_tick must be positive, got %v", c.Pet.AnimationTick)
	check(c.Pet.Frames >= 1, "pet.frames must be at least 1, got %d", c.Pet.Frames)
	check(c.Anchor.Tolerance >= 0, "anchor.tolerance must not be negative, got %d", c.Anchor.Tolerance)
	check(c.Anchor.FallbackWidth >= 1 && c.Anchor.FallbackHeight >= 1, "anchor fallback display must be positive, got %dx%d", c.Anchor.FallbackWidth, c.Anchor.FallbackHeight)

	return errors.Join(errs...)
}

// PetConfig converts to the engine's per-pet tunables
func (c *Config) PetConfig() engine.PetConfig {
	return engine.PetConfig{
		Width:         c.Pet.Width,
		Height:        c.Pet.Height,
		Speed:         c.Motion.Speed,
		PauseMin:      c.Motion.PauseMinTicks,
		PauseMax:      c.Motion.PauseMaxTicks,
		MaxHunger:     c.Needs.MaxHunger,
		MaxLoneliness: c.Needs.MaxLoneliness,
		Frames:        c.Pet.Frames,
	}
}

// Intervals converts to the scheduler's tick periods
func (c *Config) Intervals() engine.Intervals {
	return engine.Intervals{
		Motion:    c.Motion.Tick,
		Decay:     c.Needs.Tick,
		Animation: c.Pet.AnimationTick,
	}
}
