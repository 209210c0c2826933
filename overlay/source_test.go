package overlay

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-pet/anchor"
	"github.com/lixenwraith/vi-pet/core"
)

func TestTerminalSourceEdges(t *testing.T) {
	src := NewTerminalSource(80, 24)
	screen := core.NewRect(0, 0, 80, 24)

	tests := []struct {
		edge anchor.Edge
		bar  core.Rect
		work core.Rect
	}{
		{anchor.EdgeLeft, core.NewRect(0, 0, 2, 24), core.Rect{Left: 2, Top: 0, Right: 80, Bottom: 24}},
		{anchor.EdgeTop, core.NewRect(0, 0, 80, 1), core.Rect{Left: 0, Top: 1, Right: 80, Bottom: 24}},
		{anchor.EdgeRight, core.NewRect(78, 0, 2, 24), core.Rect{Left: 0, Top: 0, Right: 78, Bottom: 24}},
		{anchor.EdgeBottom, core.NewRect(0, 23, 80, 1), core.Rect{Left: 0, Top: 0, Right: 80, Bottom: 23}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			if got := src.CycleEdge(); got != tt.edge {
				t.Fatalf("Expected edge %s, got %s", tt.edge, got)
			}
			bar, err := src.TaskbarRect()
			if err != nil {
				t.Fatal(err)
			}
			if bar != tt.bar {
				t.Errorf("Expected bar %+v, got %+v", tt.bar, bar)
			}
			_, work, err := src.Display()
			if err != nil {
				t.Fatal(err)
			}
			if work != tt.work {
				t.Errorf("Expected work %+v, got %+v", tt.work, work)
			}
			if got := anchor.Classify(bar, screen); got != tt.edge {
				t.Errorf("Expected bar classified %s, got %s", tt.edge, got)
			}
		})
	}
}

func TestTerminalSourceHiddenFallsBack(t *testing.T) {
	src := NewTerminalSource(80, 24)
	if !src.ToggleHidden() {
		t.Fatal("Expected hidden")
	}
	if _, err := src.TaskbarRect(); !errors.Is(err, anchor.ErrAnchorQueryFailed) {
		t.Fatalf("Expected ErrAnchorQueryFailed, got %v", err)
	}

	tracker := anchor.NewTracker(src, anchor.Options{})
	a := tracker.Current()
	if a.Edge != anchor.EdgeBottom || a.Thickness() != 0 {
		t.Errorf("Expected zero-thickness bottom fallback, got %s", a)
	}
	if y := a.AnchoredY(5, 0); y != 19 {
		t.Errorf("Expected pet flush with bottom at 19, got %d", y)
	}
}

func TestTerminalSourceDegenerateSize(t *testing.T) {
	src := NewTerminalSource(0, 0)
	if _, _, err := src.Display(); !errors.Is(err, anchor.ErrAnchorQueryFailed) {
		t.Errorf("Expected display failure, got %v", err)
	}
	if _, err := src.TaskbarRect(); err == nil {
		t.Error("Expected taskbar failure")
	}
	src.SetSize(40, 10)
	if _, _, err := src.Display(); err != nil {
		t.Errorf("Expected display after resize, got %v", err)
	}
}
