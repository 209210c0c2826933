package motion

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/vi-pet/core"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

var testParams = Params{Width: 120, Speed: 5, PauseMin: 20, PauseMax: 60}

func TestSampleXBounds(t *testing.T) {
	rng := testRNG()
	work := core.Rect{Left: 0, Top: 0, Right: 1000, Bottom: 700}
	for i := 0; i < 10000; i++ {
		x := sampleX(work, 120, rng)
		if x < 0 || x > 880 {
			t.Fatalf("Sample %d out of [0, 880]: %d", i, x)
		}
	}
}

func TestSampleXDegenerateArea(t *testing.T) {
	rng := testRNG()
	cases := []core.Rect{
		{Left: 100, Top: 0, Right: 220, Bottom: 10}, // exactly sprite width
		{Left: 100, Top: 0, Right: 150, Bottom: 10}, // narrower than sprite
		{Left: 100, Top: 0, Right: 100, Bottom: 10}, // zero width
		{Left: 100, Top: 0, Right: 40, Bottom: 10},  // inverted
	}
	for _, area := range cases {
		if x := sampleX(area, 120, rng); x != 100 {
			t.Errorf("Area %+v: expected collapse to 100, got %d", area, x)
		}
	}
}

func TestFirstTickSettlesIntoPause(t *testing.T) {
	c := New(testParams, 300, testRNG())
	c.Tick(core.NewRect(0, 0, 1000, 700), false)

	if c.State() != Paused {
		t.Fatalf("Expected Paused after first tick, got %s", c.State())
	}
	if p := c.PauseTicks(); p < 20 || p >= 60 {
		t.Errorf("Expected pause in [20,60), got %d", p)
	}
	if c.Position().CurrentX != 300 {
		t.Errorf("Expected X unchanged at 300, got %v", c.Position().CurrentX)
	}
}

func TestPauseExpiresIntoMoving(t *testing.T) {
	work := core.NewRect(0, 0, 1000, 700)
	c := New(testParams, 300, testRNG())
	c.Tick(work, false)

	pause := c.PauseTicks()
	for i := 0; i < pause-1; i++ {
		c.Tick(work, false)
		if c.State() != Paused {
			t.Fatalf("Left pause early at tick %d of %d", i+1, pause)
		}
	}
	c.Tick(work, false)
	if c.State() != Moving {
		t.Fatalf("Expected Moving after %d paused ticks", pause)
	}
	if tx := c.Position().TargetX; tx < 0 || tx > 880 {
		t.Errorf("Target %v outside [0, 880]", tx)
	}
}

func TestMovingAdvancesAndSnaps(t *testing.T) {
	c := New(testParams, 100, testRNG())
	c.pos.TargetX = 112
	work := core.NewRect(0, 0, 1000, 700)

	c.Tick(work, false)
	if got := c.Position().CurrentX; got != 105 {
		t.Fatalf("Expected 105 after one step, got %v", got)
	}
	c.Tick(work, false)
	if got := c.Position().CurrentX; got != 110 {
		t.Fatalf("Expected 110 after two steps, got %v", got)
	}
	// Remaining distance 2 < speed 5: snap
	c.Tick(work, false)
	if got := c.Position().CurrentX; got != 112 {
		t.Fatalf("Expected snap to 112, got %v", got)
	}
	if c.State() != Paused {
		t.Errorf("Expected Paused after snap, got %s", c.State())
	}
}

func TestMovingLeft(t *testing.T) {
	c := New(testParams, 500, testRNG())
	c.pos.TargetX = 400
	c.Tick(core.NewRect(0, 0, 1000, 700), false)
	if got := c.Position().CurrentX; got != 495 {
		t.Errorf("Expected 495, got %v", got)
	}
}

func TestHoverFreezesMotion(t *testing.T) {
	c := New(testParams, 100, testRNG())
	c.pos.TargetX = 800
	work := core.NewRect(0, 0, 1000, 700)

	for i := 0; i < 50; i++ {
		c.Tick(work, true)
		if got := c.Position().CurrentX; got != 100 {
			t.Fatalf("Tick %d: X moved to %v while hovering", i, got)
		}
		if c.State() != Moving {
			t.Fatalf("Tick %d: hovering changed state to %s", i, c.State())
		}
	}

	c.Tick(work, false)
	if got := c.Position().CurrentX; got != 105 {
		t.Errorf("Expected walk to resume at 105, got %v", got)
	}
}

func TestTargetsStayInWorkArea(t *testing.T) {
	work := core.Rect{Left: 0, Top: 0, Right: 1000, Bottom: 700}
	c := New(testParams, 0, testRNG())
	for i := 0; i < 20000; i++ {
		c.Tick(work, false)
		p := c.Position()
		if p.TargetX < 0 || p.TargetX > 880 {
			t.Fatalf("Tick %d: target %v outside [0, 880]", i, p.TargetX)
		}
	}
}

func TestSetAnchoredYIndependentOfWalk(t *testing.T) {
	c := New(testParams, 100, testRNG())
	c.SetAnchoredY(920)
	c.Tick(core.NewRect(0, 0, 1000, 700), false)
	if c.Position().AnchoredY != 920 {
		t.Errorf("Expected AnchoredY 920 preserved, got %d", c.Position().AnchoredY)
	}
}
