package model

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a cancellable deferred callback.
type Timer interface {
	// Stop cancels the callback. It reports false when the callback
	// already ran or was stopped before.
	Stop() bool
}

// Scheduler runs f once after d. Implementations must deliver f on the
// same logical thread as every other handler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
