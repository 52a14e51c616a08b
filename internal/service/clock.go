package service

import "time"

// Clock supplies the current time to the lifecycle service and scheduler.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock; time.Now carries a monotonic reading, so
// deadline arithmetic between two readings is immune to wall clock jumps.
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}
