package anchor

import (
	"sync"

	"github.com/lixenwraith/vi-pet/core"
)

// Source answers the two geometry queries the tracker needs
type Source interface {
	// TaskbarRect is the authoritative taskbar position (app-bar query)
	TaskbarRect() (core.Rect, error)
	// Display returns the primary display bounds and its working area
	Display() (screen, work core.Rect, err error)
}

// Watcher installs an asynchronous change notification
// notify may run on any goroutine or foreign OS thread and must only signal
type Watcher interface {
	Watch(notify func()) (stop func(), err error)
}

// StaticSource is a fixed, externally fed Source
// Safe for concurrent use; tests and the terminal presenter mutate it between ticks
type StaticSource struct {
	mu         sync.RWMutex
	screen     core.Rect
	work       core.Rect
	bar        core.Rect
	barErr     error
	displayErr error
}

// NewStaticSource creates a source with the given display and no taskbar
func NewStaticSource(screen, work core.Rect) *StaticSource {
	return &StaticSource{screen: screen, work: work, barErr: ErrAnchorQueryFailed}
}

func (s *StaticSource) TaskbarRect() (core.Rect, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bar, s.barErr
}

func (s *StaticSource) Display() (core.Rect, core.Rect, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen, s.work, s.displayErr
}

// SetDisplay replaces the display geometry and clears any display failure
func (s *StaticSource) SetDisplay(screen, work core.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen, s.work, s.displayErr = screen, work, nil
}

// SetTaskbar makes the primary query succeed with bar
func (s *StaticSource) SetTaskbar(bar core.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bar, s.barErr = bar, nil
}

// FailTaskbar makes the primary query return err
func (s *StaticSource) FailTaskbar(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bar, s.barErr = core.Rect{}, err
}

// FailDisplay makes the display query return err
func (s *StaticSource) FailDisplay(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayErr = err
}

// ExternalWatcher is a Watcher fired by the embedding code instead of the OS
type ExternalWatcher struct {
	mu     sync.Mutex
	notify func()
	err    error
}

func NewExternalWatcher() *ExternalWatcher {
	return &ExternalWatcher{}
}

// FailWith makes subsequent Watch calls fail with err
func (w *ExternalWatcher) FailWith(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.err = err
}

func (w *ExternalWatcher) Watch(notify func()) (func(), error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return nil, w.err
	}
	w.notify = notify
	return func() {
		w.mu.Lock()
		w.notify = nil
		w.mu.Unlock()
	}, nil
}

// Fire delivers one change notification; no-op when nothing is watching
func (w *ExternalWatcher) Fire() {
	w.mu.Lock()
	notify := w.notify
	w.mu.Unlock()
	if notify != nil {
		notify()
	}
}
