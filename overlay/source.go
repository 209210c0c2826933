package overlay

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/vi-pet/anchor"
	"github.com/lixenwraith/vi-pet/core"
)

// barThickness is the simulated taskbar extent in cells
// Vertical bars are two columns so they read as bars at terminal aspect ratio
func barThickness(e anchor.Edge) int {
	if e == anchor.EdgeLeft || e == anchor.EdgeRight {
		return 2
	}
	return 1
}

// edgeCycle is the order the 't' key walks through
var edgeCycle = map[anchor.Edge]anchor.Edge{
	anchor.EdgeBottom: anchor.EdgeLeft,
	anchor.EdgeLeft:   anchor.EdgeTop,
	anchor.EdgeTop:    anchor.EdgeRight,
	anchor.EdgeRight:  anchor.EdgeBottom,
}

// TerminalSource treats the terminal grid as the display with a one-row taskbar
// Written by the input goroutine, read by the owner loop
type TerminalSource struct {
	mu     sync.RWMutex
	width  int
	height int
	edge   anchor.Edge
	hidden bool
}

// NewTerminalSource creates a source with the taskbar on the bottom edge
func NewTerminalSource(width, height int) *TerminalSource {
	return &TerminalSource{width: width, height: height, edge: anchor.EdgeBottom}
}

// SetSize records a terminal resize
func (s *TerminalSource) SetSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

// CycleEdge docks the taskbar on the next edge and returns it
func (s *TerminalSource) CycleEdge() anchor.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edge = edgeCycle[s.edge]
	return s.edge
}

// ToggleHidden hides or shows the taskbar
// A hidden bar fails the primary query and gives back its working-area space
func (s *TerminalSource) ToggleHidden() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = !s.hidden
	return s.hidden
}

func (s *TerminalSource) Edge() anchor.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edge
}

func (s *TerminalSource) TaskbarRect() (core.Rect, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hidden {
		return core.Rect{}, fmt.Errorf("%w: taskbar hidden", anchor.ErrAnchorQueryFailed)
	}
	if s.width <= 0 || s.height <= 0 {
		return core.Rect{}, fmt.Errorf("%w: terminal %dx%d", anchor.ErrAnchorQueryFailed, s.width, s.height)
	}
	return s.barLocked(), nil
}

func (s *TerminalSource) Display() (core.Rect, core.Rect, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.width <= 0 || s.height <= 0 {
		return core.Rect{}, core.Rect{}, fmt.Errorf("%w: terminal %dx%d", anchor.ErrAnchorQueryFailed, s.width, s.height)
	}
	screen := core.NewRect(0, 0, s.width, s.height)
	if s.hidden {
		return screen, screen, nil
	}

	work := screen
	n := barThickness(s.edge)
	switch s.edge {
	case anchor.EdgeBottom:
		work.Bottom -= n
	case anchor.EdgeTop:
		work.Top += n
	case anchor.EdgeLeft:
		work.Left += n
	case anchor.EdgeRight:
		work.Right -= n
	}
	return screen, work.Intersect(screen), nil
}

func (s *TerminalSource) barLocked() core.Rect {
	w, h, n := s.width, s.height, barThickness(s.edge)
	switch s.edge {
	case anchor.EdgeTop:
		return core.NewRect(0, 0, w, n)
	case anchor.EdgeLeft:
		return core.NewRect(0, 0, n, h)
	case anchor.EdgeRight:
		return core.NewRect(w-n, 0, n, h)
	default:
		return core.NewRect(0, h-n, w, n)
	}
}
