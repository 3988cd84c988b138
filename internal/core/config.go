package core

// RuntimeConfig contains configuration passed to the game at startup.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	TickRate  int    // Simulation ticks per second (0 = use the YAML tick_ms)
	Namespace string // Record namespace in the persistent store
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  0,
		Namespace: "curry",
	}
}

// Signal is an abstract, already debounced input event.
// The platform turns raw key and mouse events into exactly one
// start/end pair per physical interaction.
type Signal int

const (
	SignalNone Signal = iota
	SignalGestureStart
	SignalGestureEnd
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalGestureStart:
		return "GestureStart"
	case SignalGestureEnd:
		return "GestureEnd"
	default:
		return "None"
	}
}
