package ratelimit

import "time"

// Clock abstracts time for the limiter so tests can drive refills.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }
