package anchor

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-pet/core"
)

var screen1080 = core.NewRect(0, 0, 1920, 1080)

func TestResolveFallbackFlushBottom(t *testing.T) {
	a, fallback := Resolve(screen1080, screen1080, core.Rect{}, ErrAnchorQueryFailed, 5)
	if !fallback {
		t.Fatal("Expected fallback path when primary query fails")
	}
	if a.Edge != EdgeBottom {
		t.Errorf("Expected bottom edge, got %s", a.Edge)
	}
	if a.Thickness() != 0 {
		t.Errorf("Expected zero thickness, got %d", a.Thickness())
	}
	if a.Rect.Top != 1080 {
		t.Errorf("Expected bar top at screen bottom, got %d", a.Rect.Top)
	}
}

func TestResolveFallbackTolerance(t *testing.T) {
	tests := []struct {
		name      string
		workBot   int
		thickness int
	}{
		{"within tolerance", 1076, 0},
		{"at tolerance", 1075, 0},
		{"beyond tolerance", 1074, 6},
		{"typical taskbar", 1040, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := core.Rect{Left: 0, Top: 0, Right: 1920, Bottom: tt.workBot}
			a, _ := Resolve(screen1080, work, core.Rect{}, ErrAnchorQueryFailed, 5)
			if a.Edge != EdgeBottom {
				t.Errorf("Expected bottom edge, got %s", a.Edge)
			}
			if a.Thickness() != tt.thickness {
				t.Errorf("Expected thickness %d, got %d", tt.thickness, a.Thickness())
			}
			if a.Rect.Bottom != screen1080.Bottom {
				t.Errorf("Expected bar flush with screen bottom, got %d", a.Rect.Bottom)
			}
		})
	}
}

func TestResolvePrimaryClassification(t *testing.T) {
	tests := []struct {
		name string
		bar  core.Rect
		want Edge
	}{
		{"bottom", core.Rect{Left: 0, Top: 1040, Right: 1920, Bottom: 1080}, EdgeBottom},
		{"top", core.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 40}, EdgeTop},
		{"left", core.Rect{Left: 0, Top: 0, Right: 60, Bottom: 1080}, EdgeLeft},
		{"right", core.Rect{Left: 1860, Top: 0, Right: 1920, Bottom: 1080}, EdgeRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, fallback := Resolve(screen1080, screen1080, tt.bar, nil, 5)
			if fallback {
				t.Fatal("Expected primary path for a valid rectangle")
			}
			if a.Edge != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, a.Edge)
			}
			if a.Rect != tt.bar {
				t.Errorf("Expected rect %+v, got %+v", tt.bar, a.Rect)
			}
		})
	}
}

func TestResolveClipsToScreen(t *testing.T) {
	// Auto-hidden bars report a rectangle hanging off the display
	bar := core.Rect{Left: -2, Top: 1078, Right: 1922, Bottom: 1120}
	a, fallback := Resolve(screen1080, screen1080, bar, nil, 5)
	if fallback {
		t.Fatal("Expected primary path")
	}
	want := core.Rect{Left: 0, Top: 1078, Right: 1920, Bottom: 1080}
	if a.Rect != want {
		t.Errorf("Expected clipped %+v, got %+v", want, a.Rect)
	}
}

func TestResolveRejectsUnusablePrimary(t *testing.T) {
	work := core.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040}
	cases := map[string]struct {
		bar core.Rect
		err error
	}{
		"empty":     {core.Rect{}, nil},
		"offscreen": {core.Rect{Left: 0, Top: 2000, Right: 1920, Bottom: 2040}, nil},
		"error":     {core.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 40}, errors.New("denied")},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			a, fallback := Resolve(screen1080, work, c.bar, c.err, 5)
			if !fallback {
				t.Fatal("Expected fallback")
			}
			if a.Edge != EdgeBottom || a.Thickness() != 40 {
				t.Errorf("Expected 40px bottom bar, got %s thickness %d", a.Edge, a.Thickness())
			}
		})
	}
}

func TestAnchoredYAsymmetry(t *testing.T) {
	bottom := Anchor{Edge: EdgeBottom, Rect: core.Rect{Left: 0, Top: 1040, Right: 1920, Bottom: 1080}}
	if y := bottom.AnchoredY(120, 7); y != 920 {
		t.Errorf("Expected 920 above bottom bar, got %d", y)
	}
	for _, e := range []Edge{EdgeTop, EdgeLeft, EdgeRight} {
		a := Anchor{Edge: e, Rect: core.Rect{Left: 0, Top: 0, Right: 60, Bottom: 60}}
		if y := a.AnchoredY(120, 7); y != 7 {
			t.Errorf("%s: expected unchanged Y 7, got %d", e, y)
		}
	}
}

func TestResolveInvertedWorkArea(t *testing.T) {
	work := core.Rect{Left: 0, Top: 0, Right: 1920, Bottom: -50}
	a, _ := Resolve(screen1080, work, core.Rect{}, ErrAnchorQueryFailed, 5)
	if a.Rect.Top < screen1080.Top || a.Rect.Bottom > screen1080.Bottom {
		t.Errorf("Expected bar within screen, got %+v", a.Rect)
	}
}
