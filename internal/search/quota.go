package search

import (
	"sync"
	"time"
)

// QuotaGuard enforces a maximum number of accepted aggregation calls per
// calendar day. State is process-wide and in-memory only; it resets on
// restart and on the first call of a new day.
type QuotaGuard struct {
	mu    sync.Mutex
	max   int
	count int
	day   time.Time        // date-only, UTC
	now   func() time.Time // injectable clock
}

// NewQuotaGuard builds a guard allowing max accepted calls per day.
func NewQuotaGuard(max int) *QuotaGuard {
	return &QuotaGuard{max: max, now: time.Now}
}

// Admit accepts or rejects one aggregation call. The check-then-increment is
// atomic: concurrent callers never over-admit. A rejected call does not
// increment the counter. A wall-clock date change resets the counter first,
// so the first call of a new day always succeeds.
func (g *QuotaGuard) Admit() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := dateOnly(g.now())
	if !today.Equal(g.day) {
		g.day = today
		g.count = 0
	}
	if g.count >= g.max {
		return ErrQuotaExceeded
	}
	g.count++
	return nil
}

// Usage reports the current counter and the day it belongs to.
func (g *QuotaGuard) Usage() (count int, day time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count, g.day
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
