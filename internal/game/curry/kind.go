// Package curry implements the conveyor-belt eating game: the belt
// simulation, the heat and cooldown rules, plate consumption and the
// phase state machine that strings a run together.
//
// The package is platform-agnostic. Time comes in as time.Time values,
// sound goes out through audio.Player and drawing goes out as a Scene.
package curry

import (
	"fmt"

	"github.com/vovakirdan/curry-rush/internal/config"
)

// Kind is what sits on a plate.
type Kind int

const (
	KindEmpty    Kind = iota // Eaten plate
	KindAir                  // Nothing was ever served here
	KindFood                 // Ordinary curry
	KindHazard               // Very hot curry, raises heat
	KindObstacle             // Not food; biting it costs a long cooldown
	KindCoolant              // Water; always drinkable
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindAir:
		return "air"
	case KindFood:
		return "food"
	case KindHazard:
		return "hazard"
	case KindObstacle:
		return "obstacle"
	case KindCoolant:
		return "coolant"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Edible reports whether eating the kind counts toward the quota.
func (k Kind) Edible() bool {
	return k == KindFood || k == KindHazard
}

// ParsePattern converts a pattern string (letters A, F, H, O, C) into kinds.
func ParsePattern(s string) ([]Kind, error) {
	if s == "" {
		return nil, fmt.Errorf("curry: empty pattern: %w", config.ErrInvalid)
	}
	kinds := make([]Kind, 0, len(s))
	for i, r := range s {
		var k Kind
		switch r {
		case 'A':
			k = KindAir
		case 'F':
			k = KindFood
		case 'H':
			k = KindHazard
		case 'O':
			k = KindObstacle
		case 'C':
			k = KindCoolant
		default:
			return nil, fmt.Errorf("curry: pattern symbol %q at %d: %w", r, i, config.ErrInvalid)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
