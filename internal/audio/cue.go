// Package audio turns game events into named sound cues and plays them
// through gopxl/beep. Asset loading is the only asynchronous work in the
// game; it never blocks the tick loop.
package audio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCue is returned when an asset name maps to no cue.
var ErrUnknownCue = errors.New("audio: unknown cue")

// Cue names a sound effect the game can request.
type Cue int

const (
	CueEat      Cue = iota // Ordinary plate eaten
	CueMiss                // Nothing (or air) in the eat zone
	CueHazard              // Very hot plate eaten
	CueObstacle            // Bit into a non-food item
	CueWater               // Drank water
	CueStart               // Countdown finished
	CueCount               // Countdown digit
	CueEnd                 // Quota reached
	cueCount
)

var cueNames = [cueCount]string{
	CueEat:      "eat",
	CueMiss:     "miss",
	CueHazard:   "hazard",
	CueObstacle: "obstacle",
	CueWater:    "water",
	CueStart:    "start",
	CueCount:    "count",
	CueEnd:      "end",
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// String returns the cue's short name.
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// Asset returns the cue's asset identity, the key used for loading and caching.
func (c Cue) Asset() string {
	return "se_" + c.String() + ".wav"
}

// CueForAsset maps an asset name back to its cue.
func CueForAsset(asset string) (Cue, error) {
	name := strings.TrimSuffix(strings.TrimPrefix(asset, "se_"), ".wav")
	for c := Cue(0); c < cueCount; c++ {
		if cueNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCue, asset)
}
