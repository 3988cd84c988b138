package clock

import (
	"testing"
	"time"
)

func TestBeatAdvance(t *testing.T) {
	start := time.Unix(50, 0)
	b := NewBeat(500 * time.Millisecond)

	if n := b.Advance(start); n != 0 {
		t.Errorf("first Advance should only anchor, got %d", n)
	}
	if n := b.Advance(start.Add(499 * time.Millisecond)); n != 0 {
		t.Errorf("Advance before a period = %d, expected 0", n)
	}
	if n := b.Advance(start.Add(500 * time.Millisecond)); n != 1 {
		t.Errorf("Advance at one period = %d, expected 1", n)
	}
	// Remainders carry over: 500ms anchor + 1200ms = 2 more periods.
	if n := b.Advance(start.Add(1700 * time.Millisecond)); n != 2 {
		t.Errorf("Advance = %d, expected 2", n)
	}
	if n := b.Advance(start.Add(2000 * time.Millisecond)); n != 1 {
		t.Errorf("Advance = %d, expected 1 (carried remainder)", n)
	}
	if b.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", b.Count())
	}
}

func TestBeatStart(t *testing.T) {
	now := time.Unix(10, 0)
	b := NewBeat(100 * time.Millisecond)
	b.Start(now)
	if n := b.Advance(now.Add(250 * time.Millisecond)); n != 2 {
		t.Errorf("Advance after Start = %d, expected 2", n)
	}
}

func TestFakeClock(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	f.Advance(3 * time.Second)
	if !f.Now().Equal(time.Unix(3, 0)) {
		t.Errorf("Now() = %v", f.Now())
	}
}
