package clock

import (
	"context"
	"time"
)

// Default loop cadence: 15ms per tick (about 66 ticks per second), never
// sleeping less than 5ms between ticks.
const (
	DefaultInterval = 15 * time.Millisecond
	DefaultMinDelay = 5 * time.Millisecond
)

// Scheduler drives a repeating callback at a target cadence.
//
// Each cycle measures how long the callback took and shortens the following
// delay by that amount, so the average cadence tracks Interval even when
// per-tick work varies. Missed wake-ups are not compensated.
type Scheduler struct {
	Interval time.Duration
	MinDelay time.Duration
	Clock    Clock

	ticks    uint64
	lastWork time.Duration
}

// NewScheduler creates a scheduler for the given interval.
// Non-positive values fall back to the defaults.
func NewScheduler(interval, minDelay time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if minDelay <= 0 {
		minDelay = DefaultMinDelay
	}
	return &Scheduler{
		Interval: interval,
		MinDelay: minDelay,
		Clock:    SystemClock{},
	}
}

// IntervalForRate converts a ticks-per-second rate into an interval.
func IntervalForRate(rate int) time.Duration {
	if rate <= 0 {
		return DefaultInterval
	}
	return time.Second / time.Duration(rate)
}

// NextDelay returns the delay before the next tick given how long the
// current tick's work took.
func (s *Scheduler) NextDelay(work time.Duration) time.Duration {
	return max(s.MinDelay, s.Interval-work)
}

// Observe records a finished tick and returns the delay to wait before the
// next one. Platforms that own their own timer (Bubble Tea) use this instead
// of Run.
func (s *Scheduler) Observe(work time.Duration) time.Duration {
	s.ticks++
	s.lastWork = work
	return s.NextDelay(work)
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// LastWork returns the measured duration of the most recent tick.
func (s *Scheduler) LastWork() time.Duration {
	return s.lastWork
}

// Run invokes fn repeatedly until ctx is done. Exactly one fn call is in
// flight at a time; the next call is scheduled only after fn returns.
// Run returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, fn func(now time.Time)) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		start := s.Clock.Now()
		fn(start)
		delay := s.Observe(s.Clock.Now().Sub(start))

		timer.Reset(delay)
	}
}
