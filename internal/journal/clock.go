package journal

import "time"

// Clock supplies entry timestamps. The journal never reads the wall clock
// directly so that analytics and golden tests can run against a fixed now.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
