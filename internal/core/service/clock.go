package service

import "time"

// Clock abstracts timer scheduling so debounce behaviour is testable on a
// fake clock instead of wall time.
type Clock interface {
	Now() time.Time
	// AfterFunc schedules f to run once d has elapsed and returns a handle
	// to cancel it.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports false when the callback already
	// fired or was stopped.
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a Clock backed by the runtime's timers.
func RealClock() Clock { return realClock{} }
