package overlay

import (
	"strings"

	"github.com/lixenwraith/vi-pet/core"
	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/lifecycle"
)

// Popup geometry in cells
const (
	popupWidth  = 28
	popupHeight = 3
	barWidth    = 10
)

// Button is a clickable affordance on the sprite's bottom row
type Button struct {
	Action engine.Action
	Label  string
	Rect   core.Rect
}

// Layout is the screen placement derived from one snapshot
type Layout struct {
	Sprite core.Rect
	// Popup is empty unless hovering
	Popup core.Rect
	// Buttons are present only while hovering
	Buttons []Button
}

// ComputeLayout places the sprite, popup and buttons for snap on screen
func ComputeLayout(snap engine.Snapshot, cfg engine.PetConfig, screen core.Rect) Layout {
	l := Layout{Sprite: snap.Bounds(cfg.Width, cfg.Height)}
	if !snap.Hovering {
		return l
	}

	row := l.Sprite.Bottom - 1
	x := l.Sprite.Left
	if snap.Life == lifecycle.Alive {
		l.Buttons = []Button{
			{Action: engine.ActionFeed, Label: "[Feed]", Rect: core.NewRect(x, row, 6, 1)},
			{Action: engine.ActionPet, Label: "[Pet]", Rect: core.NewRect(x+6, row, 5, 1)},
		}
	} else {
		l.Buttons = []Button{
			{Action: engine.ActionBury, Label: "[Bury]", Rect: core.NewRect(x+(cfg.Width-6)/2, row, 6, 1)},
		}
	}

	// Above the sprite when it fits, otherwise below
	top := l.Sprite.Top - popupHeight
	if top < screen.Top {
		top = l.Sprite.Bottom
	}
	left := min(l.Sprite.Left, screen.Right-popupWidth)
	left = max(left, screen.Left)
	l.Popup = core.NewRect(left, top, popupWidth, popupHeight)
	return l
}

// HitTest resolves a click to a button action
func (l Layout) HitTest(x, y int) (engine.Action, bool) {
	p := core.Point{X: x, Y: y}
	for _, b := range l.Buttons {
		if b.Rect.Contains(p) {
			return b.Action, true
		}
	}
	return 0, false
}

// Over reports whether the pointer is on the sprite
func (l Layout) Over(x, y int) bool {
	return l.Sprite.Contains(core.Point{X: x, Y: y})
}

// Bar renders value/limit as a fixed-width gauge
func Bar(value, limit, width int) string {
	if limit <= 0 || width <= 0 {
		return ""
	}
	filled := min(max(value*width/limit, 0), width)
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}
