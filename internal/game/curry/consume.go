package curry

import (
	"time"

	"github.com/vovakirdan/curry-rush/internal/audio"
)

// Outcome is the result of one bite.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Bit an already eaten plate
	OutcomeDrink                   // Drank water
	OutcomeBlocked                 // Still cooling down; input swallowed
	OutcomeMiss                    // Nothing, or air, in reach
	OutcomeObstacle                // Bit a non-food item
	OutcomeEat                     // Ate ordinary curry
	OutcomeHazard                  // Ate very hot curry
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:     "none",
	OutcomeDrink:    "drink",
	OutcomeBlocked:  "blocked",
	OutcomeMiss:     "miss",
	OutcomeObstacle: "obstacle",
	OutcomeEat:      "eat",
	OutcomeHazard:   "hazard",
}

// String returns the outcome's name.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Cue returns the sound for the outcome, if it has one.
func (o Outcome) Cue() (audio.Cue, bool) {
	switch o {
	case OutcomeDrink:
		return audio.CueWater, true
	case OutcomeMiss:
		return audio.CueMiss, true
	case OutcomeObstacle:
		return audio.CueObstacle, true
	case OutcomeEat:
		return audio.CueEat, true
	case OutcomeHazard:
		return audio.CueHazard, true
	default:
		return 0, false
	}
}

// Consumed reports whether a plate was eaten and the quota should drop.
func (o Outcome) Consumed() bool {
	return o == OutcomeEat || o == OutcomeHazard
}

// Rules holds the penalties applied by Resolve.
type Rules struct {
	MissPenalty     time.Duration
	ObstaclePenalty time.Duration
	PatternLen      int // Heat lasts this many recycles, plus one
}

// Resolve applies one bite at now to item (nil when nothing is in reach)
// and the hazard state. Water is always drinkable; everything else is
// refused during a cooldown.
func Resolve(now time.Time, item *Item, hz *Hazard, rules Rules) Outcome {
	if item != nil && item.Kind == KindCoolant {
		hz.Cool()
		item.Kind = KindAir
		return OutcomeDrink
	}
	if hz.Blocked(now) {
		return OutcomeBlocked
	}
	if item == nil || item.Kind == KindAir {
		hz.Penalize(now, rules.MissPenalty)
		return OutcomeMiss
	}

	switch item.Kind {
	case KindObstacle:
		hz.Penalize(now, rules.ObstaclePenalty)
		return OutcomeObstacle
	case KindFood, KindHazard:
		out := OutcomeEat
		if item.Kind == KindHazard {
			hz.Raise(rules.PatternLen)
			out = OutcomeHazard
		}
		hz.ClearCooldown()
		item.Kind = KindEmpty
		return out
	}
	return OutcomeNone
}
