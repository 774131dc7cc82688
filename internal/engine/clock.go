package engine

import "time"

// Clock supplies "today". Reference years and the active micro-cycle
// windows are resolved against it, so tests inject a fixed instant.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
