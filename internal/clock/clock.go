// Package clock provides the wall-clock driven tick loop and the small timing
// utilities the game owns: debouncers and periodic beats.
package clock

import "time"

// Clock reads wall-clock time. Tests substitute Fake.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the real time with a monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fake is a manually advanced clock.
type Fake struct {
	now time.Time
}

// NewFake creates a fake clock starting at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the current fake time.
func (f *Fake) Now() time.Time {
	return f.now
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
