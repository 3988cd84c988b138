// Package config provides YAML-based game configuration loading for Curry Rush.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// CurryConfig contains all configuration for the game.
type CurryConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Belt     BeltConfig     `yaml:"belt"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
}

// TimingConfig defines loop cadence and animation clocks.
type TimingConfig struct {
	TickMs       int `yaml:"tick_ms"`        // Target tick interval
	MinDelayMs   int `yaml:"min_delay_ms"`   // Floor for the corrected delay
	BeatMs       int `yaml:"beat_ms"`        // Animation frame / grace countdown period
	DrinkFrameMs int `yaml:"drink_frame_ms"` // Mouth animation frame period
}

// BeltConfig defines conveyor geometry in belt units.
type BeltConfig struct {
	TableSize      int     `yaml:"table_size"`       // Belt width in cells
	CellSize       int     `yaml:"cell_size"`        // Units per cell (item size)
	EatOffsetCells float64 `yaml:"eat_offset_cells"` // Eat zone distance from the right edge
}

// GameplayConfig defines scoring, penalties and the plate pattern.
type GameplayConfig struct {
	Quota             int    `yaml:"quota"`
	Countdown         int    `yaml:"countdown"`
	MissPenaltyMs     int    `yaml:"miss_penalty_ms"`
	ObstaclePenaltyMs int    `yaml:"obstacle_penalty_ms"`
	MaxHeat           int    `yaml:"max_heat"`
	GraceBeats        int    `yaml:"grace_beats"`
	IdleHintBeats     int    `yaml:"idle_hint_beats"`
	Pattern           string `yaml:"pattern"` // A air, F food, H hazard, O obstacle, C coolant
}

// AudioConfig defines cue assets and the discrete volume set.
type AudioConfig struct {
	Assets         string    `yaml:"assets"` // Directory of se_<cue>.wav files, empty = synthesized
	Volumes        []float64 `yaml:"volumes"`
	SaveDebounceMs int       `yaml:"save_debounce_ms"`
}

// PatternSymbols lists the letters accepted in GameplayConfig.Pattern.
const PatternSymbols = "AFHOC"

// TickInterval returns the target tick interval.
func (c TimingConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// MinDelay returns the minimum delay between ticks.
func (c TimingConfig) MinDelay() time.Duration {
	return time.Duration(c.MinDelayMs) * time.Millisecond
}

// Beat returns the animation beat period.
func (c TimingConfig) Beat() time.Duration {
	return time.Duration(c.BeatMs) * time.Millisecond
}

// DrinkFrame returns the mouth animation frame period.
func (c TimingConfig) DrinkFrame() time.Duration {
	return time.Duration(c.DrinkFrameMs) * time.Millisecond
}

// Width returns the belt's right edge in belt units.
func (c BeltConfig) Width() float64 {
	return float64(c.TableSize * c.CellSize)
}

// EatX returns the eat threshold in belt units.
func (c BeltConfig) EatX() float64 {
	return c.Width() - float64(c.CellSize)*c.EatOffsetCells
}

// MissPenalty returns the cooldown applied on a miss.
func (c GameplayConfig) MissPenalty() time.Duration {
	return time.Duration(c.MissPenaltyMs) * time.Millisecond
}

// ObstaclePenalty returns the cooldown applied on an obstacle.
func (c GameplayConfig) ObstaclePenalty() time.Duration {
	return time.Duration(c.ObstaclePenaltyMs) * time.Millisecond
}

// SaveDebounce returns the quiet period before a volume change is written.
func (c AudioConfig) SaveDebounce() time.Duration {
	return time.Duration(c.SaveDebounceMs) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
func (c CurryConfig) Validate() error {
	switch {
	case c.Timing.TickMs <= 0 || c.Timing.MinDelayMs <= 0:
		return fmt.Errorf("%w: tick_ms and min_delay_ms must be positive", ErrInvalid)
	case c.Timing.BeatMs <= 0 || c.Timing.DrinkFrameMs <= 0:
		return fmt.Errorf("%w: beat_ms and drink_frame_ms must be positive", ErrInvalid)
	case c.Belt.TableSize < 2 || c.Belt.CellSize <= 0:
		return fmt.Errorf("%w: belt table_size must be >= 2 and cell_size positive", ErrInvalid)
	case c.Belt.EatOffsetCells <= 0 || c.Belt.EatOffsetCells >= float64(c.Belt.TableSize):
		return fmt.Errorf("%w: eat_offset_cells must lie inside the belt", ErrInvalid)
	case c.Gameplay.Quota <= 0:
		return fmt.Errorf("%w: quota must be positive", ErrInvalid)
	case c.Gameplay.Countdown <= 0:
		return fmt.Errorf("%w: countdown must be positive", ErrInvalid)
	case c.Gameplay.MaxHeat <= 0:
		return fmt.Errorf("%w: max_heat must be positive", ErrInvalid)
	case c.Gameplay.Pattern == "":
		return fmt.Errorf("%w: pattern is empty", ErrInvalid)
	}

	for i, r := range c.Gameplay.Pattern {
		if !strings.ContainsRune(PatternSymbols, r) {
			return fmt.Errorf("%w: pattern symbol %q at %d", ErrInvalid, r, i)
		}
	}

	if len(c.Audio.Volumes) == 0 || c.Audio.Volumes[0] != 0 {
		return fmt.Errorf("%w: volumes must start with 0 (muted)", ErrInvalid)
	}
	for i := 1; i < len(c.Audio.Volumes); i++ {
		if c.Audio.Volumes[i] <= c.Audio.Volumes[i-1] || c.Audio.Volumes[i] > 1 {
			return fmt.Errorf("%w: volumes must increase and stay within 1", ErrInvalid)
		}
	}
	return nil
}
