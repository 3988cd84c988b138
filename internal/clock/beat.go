package clock

import "time"

// Beat counts whole periods of wall-clock time. The game advances it every
// tick and reacts to the number of periods that passed since the last call.
type Beat struct {
	period time.Duration
	last   time.Time
	count  uint64
}

// NewBeat creates a beat with the given period.
func NewBeat(period time.Duration) *Beat {
	return &Beat{period: period}
}

// Start anchors the beat at now without reporting any elapsed periods.
func (b *Beat) Start(now time.Time) {
	b.last = now
}

// Advance returns how many whole periods elapsed since the previous call.
// The first call after construction only anchors the beat.
func (b *Beat) Advance(now time.Time) int {
	if b.last.IsZero() {
		b.last = now
		return 0
	}
	n := int(now.Sub(b.last) / b.period)
	if n <= 0 {
		return 0
	}
	b.last = b.last.Add(time.Duration(n) * b.period)
	b.count += uint64(n)
	return n
}

// Count returns the total number of periods observed.
func (b *Beat) Count() uint64 {
	return b.count
}
