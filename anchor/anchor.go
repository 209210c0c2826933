// Package anchor tracks the screen edge the pet stands on.
//
// The taskbar rectangle comes from a Source (the OS shell on Windows, a
// terminal grid or a fixed value elsewhere). When the authoritative query
// fails the tracker derives a bottom bar from the gap between the display
// bounds and its working area, so an anchor is always defined.
package anchor

import (
	"fmt"

	"github.com/lixenwraith/vi-pet/core"
)

// Edge is the display side the taskbar is docked to
type Edge uint8

const (
	EdgeBottom Edge = iota
	EdgeTop
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return fmt.Sprintf("edge(%d)", uint8(e))
	}
}

// Anchor is one resolved taskbar position together with the display it was measured on
// Comparable: the tracker uses == to detect distinct changes
type Anchor struct {
	Edge Edge
	// Rect is the taskbar, always within Screen; zero height for a hidden bar
	Rect core.Rect
	// Screen is the full display bounds
	Screen core.Rect
	// Work is the usable working area the pet roams in
	Work core.Rect
}

// Thickness returns the taskbar extent perpendicular to its edge
func (a Anchor) Thickness() int {
	switch a.Edge {
	case EdgeLeft, EdgeRight:
		return a.Rect.Width()
	default:
		return a.Rect.Height()
	}
}

// AnchoredY returns the top coordinate for a sprite of the given height standing on the anchor
// Only a bottom bar moves the sprite; other edges keep current
func (a Anchor) AnchoredY(height, current int) int {
	if a.Edge == EdgeBottom {
		return a.Rect.Top - height
	}
	return current
}

func (a Anchor) String() string {
	return fmt.Sprintf("%s [%d,%d,%d,%d] on %dx%d", a.Edge,
		a.Rect.Left, a.Rect.Top, a.Rect.Right, a.Rect.Bottom,
		a.Screen.Width(), a.Screen.Height())
}

// Classify maps a taskbar rectangle to the screen edge it sits on
func Classify(bar, screen core.Rect) Edge {
	mid := screen.Center()
	switch {
	case bar.Top > mid.Y:
		return EdgeBottom
	case bar.Left > mid.X:
		return EdgeRight
	case bar.Right < mid.X:
		return EdgeLeft
	default:
		return EdgeTop
	}
}

// Resolve computes the anchor from one round of queries
// bar/barErr is the primary taskbar query; fallback reports whether the working-area path was used
func Resolve(screen, work, bar core.Rect, barErr error, tolerance int) (a Anchor, fallback bool) {
	a = Anchor{Screen: screen, Work: work}

	if barErr == nil && !bar.Empty() {
		if clipped := bar.Intersect(screen); !clipped.Empty() {
			a.Rect = clipped
			a.Edge = Classify(clipped, screen)
			return a, false
		}
	}

	a.Edge = EdgeBottom
	if top := min(max(work.Bottom, screen.Top), screen.Bottom); screen.Bottom-top > tolerance {
		a.Rect = core.Rect{Left: screen.Left, Top: top, Right: screen.Right, Bottom: screen.Bottom}
	} else {
		a.Rect = core.Rect{Left: screen.Left, Top: screen.Bottom, Right: screen.Right, Bottom: screen.Bottom}
	}
	return a, true
}
