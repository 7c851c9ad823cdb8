// Package testutil provides deterministic fixtures for journal tests.
package testutil

import (
	"sync"
	"time"
)

// Clock is a settable clock for tests.
//
// Unlike journal.SystemClock, Clock returns a fixed instant that tests
// advance explicitly, so appended entries carry exactly the timestamps a
// scenario declares.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though journal usage is single-writer.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock fixed at the given instant.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current fixed instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to a specific instant.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d and returns the new instant.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
