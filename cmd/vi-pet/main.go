package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/vi-pet/anchor"
	"github.com/lixenwraith/vi-pet/audio"
	"github.com/lixenwraith/vi-pet/config"
	"github.com/lixenwraith/vi-pet/core"
	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/lifecycle"
	"github.com/lixenwraith/vi-pet/overlay"
	"github.com/lixenwraith/vi-pet/status"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "YAML config file (default $"+config.EnvConfigPath+")")
	debug := pflag.BoolP("debug", "d", false, "write logs/vi-pet.log and show the status line")
	mute := pflag.BoolP("mute", "m", false, "start with sound muted")
	seed := pflag.Uint64("seed", 0, "seed for the random walk, 0 derives one from the clock")
	hook := pflag.Bool("hook", true, "deliver resizes and taskbar moves through the change hook")
	pflag.Parse()

	cfg, err := config.Load(*configPath, config.DefaultTerminal())
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pet: %v\n", err)
		os.Exit(2)
	}
	flags := pflag.CommandLine
	if flags.Changed("debug") {
		cfg.Log.Debug = *debug
	}
	if flags.Changed("mute") {
		cfg.Audio.Enabled = !*mute
	}
	if flags.Changed("hook") {
		cfg.Anchor.Hook = *hook
	}

	logger, logFile := setupLogging(cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Info("audio unavailable, continuing muted", "error", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(!cfg.Audio.Enabled)

	reg := status.NewRegistry()
	w, h := screen.Size()
	source := overlay.NewTerminalSource(w, h)
	tracker := anchor.NewTracker(source, anchor.Options{
		Tolerance:      cfg.Anchor.Tolerance,
		FallbackScreen: core.NewRect(0, 0, cfg.Anchor.FallbackWidth, cfg.Anchor.FallbackHeight),
		Logger:         logger,
		Status:         reg,
	})
	defer tracker.Close()

	watcher := anchor.NewExternalWatcher()
	if !cfg.Anchor.Hook {
		watcher.FailWith(errors.New("disabled by config"))
	}
	// Failure leaves the tracker polling on every motion tick
	_ = tracker.Watch(watcher)

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	}

	pet := engine.NewPet(cfg.PetConfig(), tracker, lifecycle.NewLifespanLog(), core.RealTime{}, rng, reg, logger)
	pet.OnDeath(func(lifecycle.Lifespan) { sounds.PlayDeath() })
	pet.OnRevive(sounds.PlayRevive)
	pet.OnCare(sounds.PlayCare)

	sched := engine.NewScheduler(pet, cfg.Intervals(), reg, logger)
	presenter := overlay.New(screen, sched, pet, source, watcher, overlay.Options{
		Debug:  cfg.Log.Debug,
		Muter:  sounds,
		Status: reg,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	core.Go(func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
		case <-presenter.Done():
		}
	})

	sched.Start()
	presenter.Run()
	sched.Stop()

	logger.Info("exit", "deaths", pet.Lifespans().Len(), "status", reg.Summary())
}
