// Package motion drives the pet's horizontal random walk.
package motion

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/vi-pet/core"
)

// State of the walk
type State uint8

const (
	Moving State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "moving"
}

// Position of the sprite's top-left corner
// CurrentX/TargetX belong to the walk; AnchoredY is written only through SetAnchoredY
type Position struct {
	CurrentX  float64
	TargetX   float64
	AnchoredY int
}

// Params are the fixed walk tunables
type Params struct {
	Width    int     // Sprite width, keeps targets fully on screen
	Speed    float64 // Advance per tick
	PauseMin int     // Inclusive
	PauseMax int     // Exclusive
}

// Controller is the two-state Moving/Paused walker
// Not safe for concurrent use; owned by the engine loop
type Controller struct {
	params     Params
	rng        *rand.Rand
	pos        Position
	state      State
	pauseTicks int
}

// New creates a controller standing at startX with TargetX == startX
// The first tick therefore settles into a pause
func New(params Params, startX float64, rng *rand.Rand) *Controller {
	if params.PauseMax <= params.PauseMin {
		params.PauseMax = params.PauseMin + 1
	}
	return &Controller{
		params: params,
		rng:    rng,
		pos:    Position{CurrentX: startX, TargetX: startX},
		state:  Moving,
	}
}

// RandomStart picks an initial X inside area the same way targets are picked
func RandomStart(area core.Rect, width int, rng *rand.Rand) float64 {
	return float64(sampleX(area, width, rng))
}

// Tick advances the walk by one motion tick
func (c *Controller) Tick(work core.Rect, hovering bool) {
	switch c.state {
	case Paused:
		c.pauseTicks--
		if c.pauseTicks <= 0 {
			c.pos.TargetX = float64(sampleX(work, c.params.Width, c.rng))
			c.state = Moving
		}

	case Moving:
		// Freeze under the pointer without leaving Moving
		if hovering {
			return
		}
		if math.Abs(c.pos.CurrentX-c.pos.TargetX) < c.params.Speed {
			c.pos.CurrentX = c.pos.TargetX
			c.pauseTicks = c.params.PauseMin + c.rng.IntN(c.params.PauseMax-c.params.PauseMin)
			c.state = Paused
			return
		}
		if c.pos.CurrentX < c.pos.TargetX {
			c.pos.CurrentX += c.params.Speed
		} else {
			c.pos.CurrentX -= c.params.Speed
		}
	}
}

// SetAnchoredY stores the vertical placement derived from the latest anchor
func (c *Controller) SetAnchoredY(y int) {
	c.pos.AnchoredY = y
}

func (c *Controller) Position() Position { return c.pos }
func (c *Controller) State() State       { return c.state }
func (c *Controller) PauseTicks() int    { return c.pauseTicks }

// sampleX draws uniformly from [Left, Right-width), collapsing to Left when that range is empty
func sampleX(area core.Rect, width int, rng *rand.Rand) int {
	hi := area.Right - width
	if hi <= area.Left {
		return area.Left
	}
	return area.Left + rng.IntN(hi-area.Left)
}
