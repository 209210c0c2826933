//go:build windows

package anchor

import (
	"sync"
	"testing"
)

func TestSystemDisplayConcurrentQueries(t *testing.T) {
	src := NewSystemSource()
	screen, work, err := src.Display()
	if err != nil {
		t.Skipf("no primary monitor in this session: %v", err)
	}
	if screen.Empty() || work.Intersect(screen) != work {
		t.Fatalf("Expected work area inside screen, got screen=%+v work=%+v", screen, work)
	}

	// Each query reuses the single enumeration callback and result slot
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				s, w, err := src.Display()
				if err != nil || s != screen || w != work {
					t.Errorf("Expected stable display, got %+v %+v %v", s, w, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
