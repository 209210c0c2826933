// Package lifecycle owns the pet's alive/dead state and the record of past lives.
package lifecycle

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pet/core"
)

// State of the pet
type State uint8

const (
	Alive State = iota
	Dead
)

func (s State) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}

// Resetter is the needs side of a revival
type Resetter interface {
	Reset()
}

// Coordinator gates the motion and decay ticks on the pet being alive
// Not safe for concurrent use; owned by the engine loop
type Coordinator struct {
	clock  core.TimeProvider
	log    *LifespanLog
	needs  Resetter
	logger *slog.Logger

	state      State
	createdAt  time.Time
	generation uuid.UUID
	// lived is the duration of the last completed life
	lived time.Duration

	onDeath  []func(Lifespan)
	onRevive []func()
}

// NewCoordinator starts an Alive pet created now
func NewCoordinator(clock core.TimeProvider, log *LifespanLog, needs Resetter, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		clock:      clock,
		log:        log,
		needs:      needs,
		logger:     logger.With("component", "lifecycle"),
		state:      Alive,
		createdAt:  clock.Now(),
		generation: uuid.New(),
	}
}

func (c *Coordinator) State() State          { return c.state }
func (c *Coordinator) Alive() bool           { return c.state == Alive }
func (c *Coordinator) CreatedAt() time.Time  { return c.createdAt }
func (c *Coordinator) Generation() uuid.UUID { return c.generation }
func (c *Coordinator) Log() *LifespanLog     { return c.log }

// Age is the elapsed time of the current life; frozen at death
func (c *Coordinator) Age() time.Duration {
	if c.state == Dead {
		return c.lived
	}
	return c.clock.Now().Sub(c.createdAt)
}

// OnDeath registers a one-shot-per-death callback
func (c *Coordinator) OnDeath(fn func(Lifespan)) {
	c.onDeath = append(c.onDeath, fn)
}

// OnRevive registers a callback run after each revival
func (c *Coordinator) OnRevive(fn func()) {
	c.onRevive = append(c.onRevive, fn)
}

// Die moves Alive to Dead and records the lifespan
// Returns false without side effects if already dead
func (c *Coordinator) Die() (Lifespan, bool) {
	if c.state == Dead {
		return Lifespan{}, false
	}
	now := c.clock.Now()
	span := Lifespan{
		ID:       c.generation,
		Born:     c.createdAt,
		Died:     now,
		Duration: now.Sub(c.createdAt),
	}
	c.state = Dead
	c.lived = span.Duration
	c.log.Append(span)
	c.logger.Info("pet died", "id", span.ID, "lifespan", span.Duration.Round(time.Second))

	for _, fn := range c.onDeath {
		fn(span)
	}
	return span, true
}

// Revive moves Dead to Alive with zeroed needs and a fresh creation time
// Returns false if the pet is alive
func (c *Coordinator) Revive() bool {
	if c.state == Alive {
		return false
	}
	now := c.clock.Now()
	// createdAt must strictly advance even on a coarse or frozen clock
	if !now.After(c.createdAt) {
		now = c.createdAt.Add(time.Nanosecond)
	}

	c.needs.Reset()
	c.createdAt = now
	c.generation = uuid.New()
	c.state = Alive
	c.logger.Info("pet revived", "id", c.generation)

	for _, fn := range c.onRevive {
		fn()
	}
	return true
}
