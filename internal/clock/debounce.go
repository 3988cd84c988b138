package clock

import "time"

// Debouncer collapses bursts of calls into one invocation of fn after a quiet
// period. It is polled from the owner's tick instead of running its own
// goroutine, so fn always runs on the owner's goroutine.
type Debouncer struct {
	delay    time.Duration
	fn       func()
	deadline time.Time
	pending  bool
}

// NewDebouncer creates a debouncer calling fn once delay has passed since the
// last Call.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call arms the debouncer, pushing any pending deadline back.
func (d *Debouncer) Call(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Poll fires fn if the quiet period has elapsed. Returns true if fn ran.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	d.fn()
	return true
}

// Flush fires a pending call immediately.
func (d *Debouncer) Flush() bool {
	if !d.pending {
		return false
	}
	d.pending = false
	d.fn()
	return true
}

// Cancel drops a pending call without firing it.
func (d *Debouncer) Cancel() {
	d.pending = false
}

// Pending reports whether a call is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.pending
}
