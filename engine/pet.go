package engine

import (
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pet/anchor"
	"github.com/lixenwraith/vi-pet/core"
	"github.com/lixenwraith/vi-pet/lifecycle"
	"github.com/lixenwraith/vi-pet/motion"
	"github.com/lixenwraith/vi-pet/needs"
	"github.com/lixenwraith/vi-pet/status"
)

// Action is a presenter affordance resolved by hit-testing
type Action uint8

const (
	ActionFeed Action = iota
	ActionPet
	ActionBury
)

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPet:
		return "pet"
	case ActionBury:
		return "bury"
	default:
		return "unknown"
	}
}

// PetConfig holds the per-pet tunables
type PetConfig struct {
	Width         int
	Height        int
	Speed         float64
	PauseMin      int
	PauseMax      int
	MaxHunger     int
	MaxLoneliness int
	Frames        int
}

// Snapshot is the read-only state a presenter renders after each tick or event
type Snapshot struct {
	Position motion.Position
	Motion   motion.State
	Needs    needs.State
	Life     lifecycle.State
	Age      time.Duration
	Anchor   anchor.Anchor
	Hovering bool
	Frame    int
	// Notice is the pending death notification, nil once acknowledged
	Notice *lifecycle.Lifespan
	Deaths int
}

// Bounds returns the sprite box in display coordinates
func (s Snapshot) Bounds(width, height int) core.Rect {
	return core.NewRect(int(s.Position.CurrentX), s.Position.AnchoredY, width, height)
}

// Pet wires the anchor tracker, walk, needs and lifecycle into one agent
// All methods run on the owner loop; presenters reach it through Scheduler.Post
type Pet struct {
	cfg     PetConfig
	tracker *anchor.Tracker
	motion  *motion.Controller
	needs   *needs.Engine
	life    *lifecycle.Coordinator
	logger  *slog.Logger

	hovering bool
	frame    int
	notice   *lifecycle.Lifespan
	onCare   []func(needs.Kind)

	statMotion  *atomic.Int64
	statDecay   *atomic.Int64
	statDeaths  *atomic.Int64
	statRevives *atomic.Int64
	statCare    *atomic.Int64
}

// NewPet creates a live pet at a random X on the tracker's current working area
func NewPet(
	cfg PetConfig,
	tracker *anchor.Tracker,
	lifespans *lifecycle.LifespanLog,
	clock core.TimeProvider,
	rng *rand.Rand,
	reg *status.Registry,
	logger *slog.Logger,
) *Pet {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if rng == nil {
		seed := uint64(clock.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	a := tracker.Current()
	n := needs.New(cfg.MaxHunger, cfg.MaxLoneliness)
	mc := motion.New(motion.Params{
		Width:    cfg.Width,
		Speed:    cfg.Speed,
		PauseMin: cfg.PauseMin,
		PauseMax: cfg.PauseMax,
	}, motion.RandomStart(a.Work, cfg.Width, rng), rng)

	p := &Pet{
		cfg:         cfg,
		tracker:     tracker,
		motion:      mc,
		needs:       n,
		life:        lifecycle.NewCoordinator(clock, lifespans, n, logger),
		logger:      logger.With("component", "pet"),
		statMotion:  reg.Ints.Get(status.MotionTicks),
		statDecay:   reg.Ints.Get(status.DecayTicks),
		statDeaths:  reg.Ints.Get(status.PetDeaths),
		statRevives: reg.Ints.Get(status.PetRevivals),
		statCare:    reg.Ints.Get(status.CareActions),
	}

	// Non-bottom anchors keep the current Y, so seed it flush with the working area
	mc.SetAnchoredY(a.AnchoredY(cfg.Height, a.Work.Bottom-cfg.Height))
	tracker.OnExternalChange(p.reanchor)

	p.life.OnDeath(func(span lifecycle.Lifespan) {
		p.notice = &span
		p.statDeaths.Add(1)
	})
	p.life.OnRevive(func() {
		p.notice = nil
		p.frame = 0
		p.statRevives.Add(1)
	})
	return p
}

// reanchor is the single writer of AnchoredY
func (p *Pet) reanchor(a anchor.Anchor) {
	y := a.AnchoredY(p.cfg.Height, p.motion.Position().AnchoredY)
	p.motion.SetAnchoredY(y)
}

// MotionTick polls the anchor every tick and walks only while alive
func (p *Pet) MotionTick() {
	p.statMotion.Add(1)
	a := p.tracker.Refresh()
	if !p.life.Alive() {
		return
	}
	p.motion.Tick(a.Work, p.hovering)
}

// DecayTick grows needs while alive; exhaustion kills the pet
func (p *Pet) DecayTick() {
	if !p.life.Alive() {
		return
	}
	p.statDecay.Add(1)
	if p.needs.Tick() {
		p.life.Die()
	}
}

// AdvanceFrame cycles the sprite animation; frozen while dead
func (p *Pet) AdvanceFrame() {
	if !p.life.Alive() || p.cfg.Frames < 2 {
		return
	}
	p.frame = (p.frame + 1) % p.cfg.Frames
}

// AnchorSignal applies a change delivered through the tracker's hook path
func (p *Pet) AnchorSignal() {
	p.tracker.Apply()
}

func (p *Pet) HoverEnter()    { p.hovering = true }
func (p *Pet) HoverLeave()    { p.hovering = false }
func (p *Pet) Hovering() bool { return p.hovering }

// Act applies a hit-tested affordance
// Care actions need a live pet, burial a dead one; both require hover
func (p *Pet) Act(a Action) bool {
	if !p.hovering {
		return false
	}
	switch a {
	case ActionFeed, ActionPet:
		if !p.life.Alive() {
			return false
		}
		kind := needs.Feed
		if a == ActionPet {
			kind = needs.Pet
		}
		p.needs.Care(kind)
		p.statCare.Add(1)
		p.logger.Debug("care action", "kind", kind)
		for _, fn := range p.onCare {
			fn(kind)
		}
		return true
	case ActionBury:
		return p.life.Revive()
	}
	return false
}

// AckNotice dismisses the pending death notification
func (p *Pet) AckNotice() {
	p.notice = nil
}

// OnDeath forwards to the lifecycle coordinator, e.g. for a sound cue
func (p *Pet) OnDeath(fn func(lifecycle.Lifespan)) {
	p.life.OnDeath(fn)
}

// OnRevive forwards to the lifecycle coordinator
func (p *Pet) OnRevive(fn func()) {
	p.life.OnRevive(fn)
}

// OnCare registers a callback run after each applied feed or pet
func (p *Pet) OnCare(fn func(needs.Kind)) {
	p.onCare = append(p.onCare, fn)
}

// OnAnchorChange registers a callback run after each distinct anchor change
// Runs after the pet has re-anchored, so Snapshot reflects the new position
func (p *Pet) OnAnchorChange(fn func(anchor.Anchor)) {
	p.tracker.OnExternalChange(fn)
}

// Lifespans is the read accessor for the stats view
func (p *Pet) Lifespans() *lifecycle.LifespanLog {
	return p.life.Log()
}

func (p *Pet) Config() PetConfig { return p.cfg }

func (p *Pet) Snapshot() Snapshot {
	return Snapshot{
		Position: p.motion.Position(),
		Motion:   p.motion.State(),
		Needs:    p.needs.Values(),
		Life:     p.life.State(),
		Age:      p.life.Age(),
		Anchor:   p.tracker.Current(),
		Hovering: p.hovering,
		Frame:    p.frame,
		Notice:   p.notice,
		Deaths:   p.life.Log().Len(),
	}
}
