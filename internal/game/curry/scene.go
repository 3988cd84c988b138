package curry

import (
	"fmt"
	"time"
)

// StatusMode selects the eater icon.
type StatusMode int

const (
	StatusHeat     StatusMode = iota // Idle or chewing, tinted by heat tier
	StatusBlocked                    // Cooling down after a mistake
	StatusDrinking                   // Drinking water
)

// Status is the eater icon next to the eat zone.
type Status struct {
	Mode  StatusMode
	Heat  int
	Frame int // Mouth frame, 0..MouthFrames
}

// Sprite is one item to draw.
type Sprite struct {
	X     float64 // Belt units
	Kind  Kind
	Frame int // 0..3
}

// Overlay carries the phase-specific text. Zero values mean "not shown",
// except Drool, which is hidden at -1 because frame 0 is drawn.
type Overlay struct {
	Best      string // Title best time
	Countdown int    // Start digit
	ShowQuota bool
	Quota     int
	Clock     string // Elapsed time; empty while blinking at the end
	Hint      bool   // "touch to start" is lit
	Drool     int    // Idle hint frame 0..3, -1 when hidden
}

// Scene is everything the renderer needs for one frame, in draw order:
// background tint, status icon, items, then overlay.
type Scene struct {
	Phase PhaseID

	Tint      int     // Heat tier; 0 is the plain background
	BeltWidth float64 // Belt units
	CellSize  float64
	EatX      float64

	Status  Status
	Sprites []Sprite
	Overlay Overlay

	Volume      int // Indicator index for the applied level
	VolumeSteps int
}

// FormatClock renders d as mm:ss.z with minutes capped at 99.
func FormatClock(d time.Duration) string {
	ms := max(d.Milliseconds(), 0)
	z := ms / 100 % 10
	s := ms / 1000 % 60
	m := min(99, ms/60000)
	return fmt.Sprintf("%02d:%02d.%d", m, s, z)
}

// buildScene snapshots the session. The phase fills in the overlay.
func buildScene(s *Session, m *Machine) Scene {
	sc := Scene{
		Phase:       m.Current(),
		Tint:        s.Hazard.Heat,
		BeltWidth:   s.Belt.Width(),
		CellSize:    float64(s.Config.Belt.CellSize),
		EatX:        s.EatX(),
		Volume:      s.Volumes.IndexFor(s.Volumes.Level(s.Volume)),
		VolumeSteps: len(s.Volumes),
		Overlay:     Overlay{Drool: -1},
	}

	switch {
	case s.Hazard.Cooling() && s.Anim.Mouth <= 1:
		sc.Status = Status{Mode: StatusBlocked, Heat: s.Hazard.Heat}
	case s.Anim.Drinking:
		sc.Status = Status{Mode: StatusDrinking, Heat: s.Hazard.Heat, Frame: s.Anim.Mouth}
	default:
		sc.Status = Status{Mode: StatusHeat, Heat: s.Hazard.Heat, Frame: s.Anim.Mouth}
	}

	items := s.Belt.Items()
	sc.Sprites = make([]Sprite, 0, len(items))
	for _, it := range items {
		sc.Sprites = append(sc.Sprites, Sprite{X: it.Pos, Kind: it.Kind, Frame: s.Anim.Frame})
	}

	m.Draw(s, &sc)
	return sc
}
