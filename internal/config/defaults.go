package config

import (
	_ "embed"
)

//go:embed defaults/curry.yaml
var defaultCurryYAML []byte

// DefaultPattern is the 48-plate cycle the belt repeats.
const DefaultPattern = "FAFCFFOF" +
	"OFFAFOFH" +
	"AAAFFFOF" +
	"FFFOFFCO" +
	"FFFOFFCH" +
	"OFOFAFFC"

// DefaultCurryConfig returns the default game configuration.
func DefaultCurryConfig() CurryConfig {
	return CurryConfig{
		Timing: TimingConfig{
			TickMs:       15,
			MinDelayMs:   5,
			BeatMs:       500,
			DrinkFrameMs: 100,
		},
		Belt: BeltConfig{
			TableSize:      10,
			CellSize:       16,
			EatOffsetCells: 2.5,
		},
		Gameplay: GameplayConfig{
			Quota:             100,
			Countdown:         3,
			MissPenaltyMs:     1000,
			ObstaclePenaltyMs: 2000,
			MaxHeat:           4,
			GraceBeats:        7,
			IdleHintBeats:     20,
			Pattern:           DefaultPattern,
		},
		Audio: AudioConfig{
			Assets:         "",
			Volumes:        []float64{0, 0.2, 0.4, 0.8},
			SaveDebounceMs: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCurryYAML
}
