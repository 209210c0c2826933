// Package needs tracks hunger and loneliness.
//
// Both counters grow by one per decay tick and are capped at their
// ceilings. Reaching either ceiling exhausts the pet.
package needs

import (
	"fmt"
	"strings"
)

// Kind is a care action
type Kind uint8

const (
	Feed Kind = iota
	Pet
)

func (k Kind) String() string {
	switch k {
	case Feed:
		return "feed"
	case Pet:
		return "pet"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind accepts "feed" or "pet", case-insensitive
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feed":
		return Feed, nil
	case "pet":
		return Pet, nil
	}
	return 0, fmt.Errorf("unknown care action %q", s)
}

// State is a read-only view for presenters
type State struct {
	Hunger        int
	Loneliness    int
	MaxHunger     int
	MaxLoneliness int
}

// Engine holds the two need counters
// Not safe for concurrent use; owned by the engine loop
type Engine struct {
	hunger        int
	loneliness    int
	maxHunger     int
	maxLoneliness int
}

// New creates an engine with both needs at zero
// Ceilings below 1 are raised to 1
func New(maxHunger, maxLoneliness int) *Engine {
	return &Engine{
		maxHunger:     max(maxHunger, 1),
		maxLoneliness: max(maxLoneliness, 1),
	}
}

// Tick grows both needs by one and reports exhaustion
func (e *Engine) Tick() bool {
	e.hunger = min(e.hunger+1, e.maxHunger)
	e.loneliness = min(e.loneliness+1, e.maxLoneliness)
	return e.Exhausted()
}

// Exhausted reports whether either need reached its ceiling
func (e *Engine) Exhausted() bool {
	return e.hunger >= e.maxHunger || e.loneliness >= e.maxLoneliness
}

// Care resets the need addressed by k, effective immediately
func (e *Engine) Care(k Kind) {
	switch k {
	case Feed:
		e.hunger = 0
	case Pet:
		e.loneliness = 0
	}
}

// Reset zeroes both needs
func (e *Engine) Reset() {
	e.hunger, e.loneliness = 0, 0
}

func (e *Engine) Values() State {
	return State{
		Hunger:        e.hunger,
		Loneliness:    e.loneliness,
		MaxHunger:     e.maxHunger,
		MaxLoneliness: e.maxLoneliness,
	}
}

// Fraction returns need/max in [0,1] for bar rendering
func (s State) Fraction(k Kind) float64 {
	if k == Pet {
		return float64(s.Loneliness) / float64(s.MaxLoneliness)
	}
	return float64(s.Hunger) / float64(s.MaxHunger)
}
