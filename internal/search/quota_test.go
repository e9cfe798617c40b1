package search

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestQuotaGuard_Boundary(t *testing.T) {
	g := NewQuotaGuard(50)
	g.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

	for i := 0; i < 50; i++ {
		if err := g.Admit(); err != nil {
			t.Fatalf("call %d unexpectedly rejected: %v", i+1, err)
		}
	}

	// call 51 is rejected and does not increment
	if err := g.Admit(); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if count, _ := g.Usage(); count != 50 {
		t.Fatalf("count=%d after rejection, want 50", count)
	}
}

func TestQuotaGuard_DayReset(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	g := NewQuotaGuard(2)
	g.now = func() time.Time { return day1 }

	_ = g.Admit()
	_ = g.Admit()
	if err := g.Admit(); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected exhaustion, got %v", err)
	}

	// first call of the new day always succeeds
	g.now = func() time.Time { return day1.Add(2 * time.Minute) }
	if err := g.Admit(); err != nil {
		t.Fatalf("expected reset on day change, got %v", err)
	}
	count, day := g.Usage()
	if count != 1 {
		t.Fatalf("count=%d after reset, want 1", count)
	}
	if day != time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("day=%v not advanced", day)
	}
}

// Concurrent admissions never exceed the budget.
func TestQuotaGuard_ConcurrentAdmit(t *testing.T) {
	g := NewQuotaGuard(100)
	g.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 300; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Admit() == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 100 {
		t.Fatalf("admitted=%d, want exactly 100", admitted)
	}
}
