// anchor-probe prints the OS taskbar anchor and every distinct change.
//
// It runs the same tracker the pet uses against the real shell: polling on
// a ticker plus the change hook when it installs. On platforms without a
// taskbar query it reports the working-area fallback for the configured display.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/vi-pet/anchor"
	"github.com/lixenwraith/vi-pet/core"
	"github.com/lixenwraith/vi-pet/parameter"
	"github.com/lixenwraith/vi-pet/status"
)

func main() {
	interval := pflag.DurationP("interval", "i", parameter.MotionTickInterval, "polling period")
	tolerance := pflag.IntP("tolerance", "t", parameter.AnchorTolerance, "working-area gap treated as no taskbar")
	hook := pflag.Bool("hook", true, "install the change hook")
	height := pflag.Int("height", parameter.PetHeight, "sprite height used to print the anchored Y")
	verbose := pflag.BoolP("verbose", "v", false, "log tracker diagnostics to stderr")
	pflag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg := status.NewRegistry()
	tracker := anchor.NewTracker(anchor.NewSystemSource(), anchor.Options{
		Tolerance:      *tolerance,
		FallbackScreen: core.NewRect(0, 0, parameter.FallbackScreenWidth, parameter.FallbackScreenHeight),
		Logger:         logger,
		Status:         reg,
	})
	defer tracker.Close()

	y := 0
	report := func(tag string, a anchor.Anchor) {
		y = a.AnchoredY(*height, y)
		fmt.Printf("%s %s thickness=%d anchoredY=%d work=%+v\n", tag, a, a.Thickness(), y, a.Work)
	}
	report("initial", tracker.Current())
	tracker.OnExternalChange(func(a anchor.Anchor) { report("change ", a) })

	if *hook {
		if err := tracker.Watch(anchor.NewHookWatcher()); err != nil {
			fmt.Printf("hook unavailable, polling every %v: %v\n", *interval, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Println(reg.Summary())
			return
		case <-ticker.C:
			tracker.Refresh()
		case <-tracker.Signals():
			tracker.Apply()
		}
	}
}
