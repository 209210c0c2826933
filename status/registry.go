package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the engine and anchor tracker
const (
	MotionTicks     = "engine.motion_ticks"
	DecayTicks      = "engine.decay_ticks"
	PostsDropped    = "engine.posts_dropped"
	AnchorRefreshes = "anchor.refreshes"
	AnchorChanges   = "anchor.changes"
	AnchorFallbacks = "anchor.fallbacks"
	AnchorSignals   = "anchor.signals"
	AnchorHooked    = "anchor.hooked"
	PetDeaths       = "pet.deaths"
	PetRevivals     = "pet.revivals"
	CareActions     = "pet.care_actions"
)

// Registry is the central metrics facade
// Components cache pointers during construction; tick loops write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Summary renders all metrics as a single "key=value" line for the debug overlay
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		fmt.Fprintf(&b, "%s=%t ", key, v.Load())
	})
	return strings.TrimSpace(b.String())
}
