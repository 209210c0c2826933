package anchor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-pet/core"
	"github.com/lixenwraith/vi-pet/status"
)

// Options configures a Tracker
type Options struct {
	// Tolerance is the working-area gap, in display units, treated as no taskbar
	Tolerance int
	// FallbackScreen is used until the first successful display query
	FallbackScreen core.Rect
	Logger         *slog.Logger
	Status         *status.Registry
}

// Tracker owns the current Anchor
//
// Refresh, Apply and the change callbacks belong to the owner loop.
// Notify is the only method meant for foreign threads: it posts a coalesced
// signal that the owner drains through Signals and Apply.
type Tracker struct {
	src       Source
	tolerance int
	logger    *slog.Logger

	mu      sync.RWMutex
	current Anchor

	// Last good display, reused when the display query fails
	screen core.Rect
	work   core.Rect

	primaryDown bool
	onChange    []func(Anchor)

	signal    chan struct{}
	stopWatch func()

	statRefreshes *atomic.Int64
	statChanges   *atomic.Int64
	statFallbacks *atomic.Int64
	statSignals   *atomic.Int64
	statHooked    *atomic.Bool
}

// NewTracker creates a tracker and resolves the initial anchor
func NewTracker(src Source, opts Options) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	t := &Tracker{
		src:           src,
		tolerance:     opts.Tolerance,
		logger:        logger.With("component", "anchor"),
		screen:        opts.FallbackScreen,
		work:          opts.FallbackScreen,
		signal:        make(chan struct{}, 1),
		statRefreshes: reg.Ints.Get(status.AnchorRefreshes),
		statChanges:   reg.Ints.Get(status.AnchorChanges),
		statFallbacks: reg.Ints.Get(status.AnchorFallbacks),
		statSignals:   reg.Ints.Get(status.AnchorSignals),
		statHooked:    reg.Bools.Get(status.AnchorHooked),
	}
	t.current = t.resolve()
	return t
}

// Current returns the last resolved anchor without querying the OS
func (t *Tracker) Current() Anchor {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// OnExternalChange registers cb to run on the owner loop once per distinct anchor change
func (t *Tracker) OnExternalChange(cb func(Anchor)) {
	t.onChange = append(t.onChange, cb)
}

// Refresh re-queries the source and returns the resulting anchor
// Callbacks fire only when the anchor differs from the previous one
func (t *Tracker) Refresh() Anchor {
	a := t.resolve()

	t.mu.Lock()
	changed := a != t.current
	t.current = a
	t.mu.Unlock()

	if changed {
		t.statChanges.Add(1)
		t.logger.Debug("anchor changed", "anchor", a.String())
		for _, cb := range t.onChange {
			cb(a)
		}
	}
	return a
}

// Notify posts a change signal; never blocks, repeated signals coalesce
func (t *Tracker) Notify() {
	t.statSignals.Add(1)
	select {
	case t.signal <- struct{}{}:
	default:
	}
}

// Signals delivers pending Notify calls to the owner loop
func (t *Tracker) Signals() <-chan struct{} {
	return t.signal
}

// Apply handles a delivered signal on the owner loop
// Drains a pending signal so the same change is not refreshed twice
func (t *Tracker) Apply() Anchor {
	select {
	case <-t.signal:
	default:
	}
	return t.Refresh()
}

// Watch installs w as the asynchronous change path
// Failure leaves the tracker polling-only; the error is returned for logging, never required handling
func (t *Tracker) Watch(w Watcher) error {
	stop, err := w.Watch(t.Notify)
	if err != nil {
		t.statHooked.Store(false)
		t.logger.Info("change hook unavailable, polling only", "error", err)
		if !errors.Is(err, ErrHookInstallFailed) {
			err = fmt.Errorf("%w: %w", ErrHookInstallFailed, err)
		}
		return err
	}
	if t.stopWatch != nil {
		t.stopWatch()
	}
	t.stopWatch = stop
	t.statHooked.Store(true)
	t.logger.Debug("change hook installed")
	return nil
}

// Close removes the installed hook, if any
func (t *Tracker) Close() {
	if t.stopWatch != nil {
		t.stopWatch()
		t.stopWatch = nil
	}
	t.statHooked.Store(false)
}

func (t *Tracker) resolve() Anchor {
	t.statRefreshes.Add(1)

	if screen, work, err := t.src.Display(); err == nil && !screen.Empty() {
		work = work.Intersect(screen)
		if work.Empty() {
			work = screen
		}
		t.screen, t.work = screen, work
	}

	bar, barErr := t.src.TaskbarRect()
	a, fallback := Resolve(t.screen, t.work, bar, barErr, t.tolerance)
	if fallback {
		t.statFallbacks.Add(1)
	}

	// Log primary query transitions only; the tracker polls at tick rate
	if fallback != t.primaryDown {
		t.primaryDown = fallback
		if fallback {
			t.logger.Debug("taskbar query unavailable, using working area", "error", barErr)
		} else {
			t.logger.Debug("taskbar query recovered")
		}
	}
	return a
}
