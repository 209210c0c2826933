package status

import (
	"sync"
	"testing"
)

func TestRegistryCachedPointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get(MotionTicks)
	b := reg.Ints.Get(MotionTicks)
	if a != b {
		t.Fatal("Expected repeated Get to return the same cell")
	}

	a.Add(3)
	if got := reg.Ints.Get(MotionTicks).Load(); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestRegistrySummaryOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get(PetDeaths).Store(2)
	reg.Ints.Get(AnchorChanges).Store(1)
	reg.Bools.Get(AnchorHooked).Store(true)

	want := "anchor.changes=1 pet.deaths=2 anchor.hooked=true"
	if got := reg.Summary(); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
	if reg.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", reg.TotalCount())
	}
}

func TestMetricMapConcurrentRegistration(t *testing.T) {
	m := NewMetricMap[int]()
	var wg sync.WaitGroup
	ptrs := make([]*int, 16)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(ptrs); i++ {
		if ptrs[i] != ptrs[0] {
			t.Fatal("Expected all goroutines to observe one cell")
		}
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 key, got %d", m.Count())
	}
}
