package lifecycle

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Lifespan records one completed life
type Lifespan struct {
	ID       uuid.UUID
	Born     time.Time
	Died     time.Time
	Duration time.Duration
}

// LifespanLog is the process-wide, append-only record of completed lives
// Created once at startup, appended by the Coordinator, read by the stats view.
// Guarded so readers off the owner loop stay safe
type LifespanLog struct {
	mu      sync.RWMutex
	entries []Lifespan
}

func NewLifespanLog() *LifespanLog {
	return &LifespanLog{}
}

// Append adds a record; insertion order is death order
func (l *LifespanLog) Append(s Lifespan) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, s)
}

// All returns a copy of the records in death order
func (l *LifespanLog) All() []Lifespan {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Lifespan, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *LifespanLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Seconds returns each lifespan in whole seconds, rounded
func (l *LifespanLog) Seconds() []int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]int64, len(l.entries))
	for i, e := range l.entries {
		out[i] = int64(e.Duration.Round(time.Second) / time.Second)
	}
	return out
}
