package service

import "time"

// Clock supplies the current instant. Injectable so the reminder logic can
// be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
