package curry

import (
	"time"

	"github.com/vovakirdan/curry-rush/internal/clock"
)

// MouthFrames is the length of the eater's chew/drink animation.
const MouthFrames = 3

// Animation is the beat-driven visual state shared by all phases.
type Animation struct {
	Frame    int  // Item sprite frame, 0..3, one step per beat
	Count    int  // Phase countdown in beats (idle hint, grace)
	Mouth    int  // Eater frame, counts down from MouthFrames to 0
	Drinking bool // Mouth animation is a drink, not a bite

	beat  *clock.Beat
	mouth *clock.Beat
}

// NewAnimation creates animation state with the given beat periods.
func NewAnimation(beat, mouth time.Duration) Animation {
	return Animation{
		beat:  clock.NewBeat(beat),
		mouth: clock.NewBeat(mouth),
	}
}

// Update advances both beats to now.
func (a *Animation) Update(now time.Time) {
	for n := a.beat.Advance(now); n > 0; n-- {
		a.Frame = (a.Frame + 1) % 4
		if a.Count > 0 {
			a.Count--
		}
	}

	steps := a.mouth.Advance(now)
	for ; steps > 0 && a.Mouth > 0; steps-- {
		a.Mouth--
		if a.Mouth == 0 {
			a.Drinking = false
		}
	}
}

// StartMouth restarts the eater animation at now.
func (a *Animation) StartMouth(now time.Time, drinking bool) {
	a.Mouth = MouthFrames
	a.Drinking = drinking
	a.mouth.Start(now)
}
