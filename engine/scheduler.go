package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pet/core"
	"github.com/lixenwraith/vi-pet/parameter"
	"github.com/lixenwraith/vi-pet/status"
)

// Intervals are the nominal tick periods
type Intervals struct {
	Motion    time.Duration
	Decay     time.Duration
	Animation time.Duration
}

// DefaultIntervals returns the 50ms / 1s / 200ms cadence
func DefaultIntervals() Intervals {
	return Intervals{
		Motion:    parameter.MotionTickInterval,
		Decay:     parameter.DecayTickInterval,
		Animation: parameter.AnimationTickInterval,
	}
}

// Scheduler is the owner loop for a Pet
//
// Every mutation of pet state happens on the scheduler goroutine: the
// three tickers, tracker signals from the hook path, and closures posted
// by input goroutines. OnFrame runs on the same goroutine after each item.
type Scheduler struct {
	pet       *Pet
	intervals Intervals
	logger    *slog.Logger

	posts   chan func(*Pet)
	onFrame func(Snapshot)

	stopChan chan struct{}
	lifeMu   sync.Mutex
	stopped  bool
	wg       sync.WaitGroup
	running  atomic.Bool

	statDropped *atomic.Int64
}

// NewScheduler creates a stopped scheduler
// Zero intervals are replaced by defaults
func NewScheduler(pet *Pet, intervals Intervals, reg *status.Registry, logger *slog.Logger) *Scheduler {
	def := DefaultIntervals()
	if intervals.Motion <= 0 {
		intervals.Motion = def.Motion
	}
	if intervals.Decay <= 0 {
		intervals.Decay = def.Decay
	}
	if intervals.Animation <= 0 {
		intervals.Animation = def.Animation
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Scheduler{
		pet:         pet,
		intervals:   intervals,
		logger:      logger.With("component", "scheduler"),
		posts:       make(chan func(*Pet), parameter.PostQueueSize),
		stopChan:    make(chan struct{}),
		statDropped: reg.Ints.Get(status.PostsDropped),
	}
}

// SetFrameHandler registers the presenter redraw, must be called before Start()
func (s *Scheduler) SetFrameHandler(fn func(Snapshot)) {
	s.onFrame = fn
}

// Post queues fn to run on the owner loop
// Never blocks: returns false and counts a drop when the queue is full
func (s *Scheduler) Post(fn func(*Pet)) bool {
	select {
	case s.posts <- fn:
		return true
	default:
		s.statDropped.Add(1)
		return false
	}
}

// Start begins the owner loop; no-op once running or stopped
func (s *Scheduler) Start() {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.stopped || s.running.Load() {
		return
	}
	s.running.Store(true)
	s.wg.Add(1)
	core.Go(s.loop)
}

// Stop halts the loop and waits for it to exit
// wg.Add happens under lifeMu, so Wait never races a concurrent Start
// Must not be called from a posted closure
func (s *Scheduler) Stop() {
	s.lifeMu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.stopChan)
	}
	s.lifeMu.Unlock()
	s.wg.Wait()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()
	defer s.running.Store(false)

	motionTicker := time.NewTicker(s.intervals.Motion)
	defer motionTicker.Stop()
	decayTicker := time.NewTicker(s.intervals.Decay)
	defer decayTicker.Stop()
	animTicker := time.NewTicker(s.intervals.Animation)
	defer animTicker.Stop()

	signals := s.pet.tracker.Signals()
	s.frame()

	for {
		select {
		case <-s.stopChan:
			return
		case <-motionTicker.C:
			s.pet.MotionTick()
		case <-decayTicker.C:
			s.pet.DecayTick()
		case <-animTicker.C:
			s.pet.AdvanceFrame()
		case <-signals:
			s.pet.AnchorSignal()
		case fn := <-s.posts:
			fn(s.pet)
		}
		s.frame()
	}
}

func (s *Scheduler) frame() {
	if s.onFrame != nil {
		s.onFrame(s.pet.Snapshot())
	}
}
