package curry

import (
	"testing"
	"time"
)

func TestAnimationBeats(t *testing.T) {
	a := NewAnimation(500*time.Millisecond, 100*time.Millisecond)
	a.Update(epoch)
	a.Count = 2

	a.Update(at(1250 * time.Millisecond))
	if a.Frame != 2 {
		t.Errorf("frame = %d, want 2", a.Frame)
	}
	if a.Count != 0 {
		t.Errorf("count = %d, want 0", a.Count)
	}

	a.Update(at(2 * time.Second))
	if a.Frame != 0 {
		t.Errorf("frame = %d, want wrap to 0", a.Frame)
	}
	if a.Count != 0 {
		t.Errorf("count went negative: %d", a.Count)
	}
}

func TestAnimationMouth(t *testing.T) {
	a := NewAnimation(500*time.Millisecond, 100*time.Millisecond)
	a.StartMouth(epoch, true)
	if a.Mouth != MouthFrames || !a.Drinking {
		t.Fatalf("mouth = %d drinking = %v", a.Mouth, a.Drinking)
	}

	a.Update(at(150 * time.Millisecond))
	if a.Mouth != 2 || !a.Drinking {
		t.Errorf("after one frame mouth = %d drinking = %v", a.Mouth, a.Drinking)
	}
	a.Update(at(time.Second))
	if a.Mouth != 0 || a.Drinking {
		t.Errorf("after the animation mouth = %d drinking = %v", a.Mouth, a.Drinking)
	}
}

func TestTitleIdleHintRearms(t *testing.T) {
	h := newHarness(t)
	h.g.Boot(epoch)
	for ms := 0; ms <= 10_500; ms += 15 {
		h.g.Tick(at(time.Duration(ms) * time.Millisecond))
		if c := h.g.Session().Anim.Count; c < 0 || c > 20 {
			t.Fatalf("idle countdown out of range: %d", c)
		}
	}
	if c := h.g.Session().Anim.Count; c < 18 {
		t.Errorf("idle countdown = %d, want rearmed near 20", c)
	}
}
