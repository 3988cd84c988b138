package curry

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/curry-rush/internal/audio"
	"github.com/vovakirdan/curry-rush/internal/config"
	"github.com/vovakirdan/curry-rush/internal/record"
)

// Session is all mutable game state. The machine hands it to the current
// phase on every call; nothing else holds game state.
type Session struct {
	Now        time.Time // Time of the current tick or gesture
	PhaseStart time.Time // When the current phase was entered

	Config  config.CurryConfig
	Belt    *Conveyor
	Hazard  Hazard
	Anim    Animation
	Volumes audio.Volumes

	Quota     int           // Plates left to eat
	Elapsed   time.Duration // Play time, clamped to record.MaxElapsed
	Countdown int           // Current 3-2-1 digit
	Cued      int           // Last digit announced with a count cue
	Best      time.Duration // Best time shown on the title
	NewBest   bool          // The last finished run set a record
	Volume    int           // Index into Volumes
	Last      Outcome       // Outcome of the latest bite

	Records *record.Adapter
	Audio   audio.Player
	Logger  *log.Logger

	// OnFinish, when set, is called once per completed run.
	OnFinish func(elapsed time.Duration, best bool)

	next      PhaseID
	requested bool
}

// Request asks the machine to switch to id after the current call returns.
func (s *Session) Request(id PhaseID) {
	s.next = id
	s.requested = true
}

// Rules returns the consumption rules for the current config.
func (s *Session) Rules() Rules {
	return Rules{
		MissPenalty:     s.Config.Gameplay.MissPenalty(),
		ObstaclePenalty: s.Config.Gameplay.ObstaclePenalty(),
		PatternLen:      s.Belt.PatternLen(),
	}
}

// EatX returns the eat zone threshold.
func (s *Session) EatX() float64 {
	return s.Config.Belt.EatX()
}

func (s *Session) play(c audio.Cue) {
	s.Logger.Debug("cue", "cue", c)
	s.Audio.Play(c)
}

func (s *Session) takeRequest() (PhaseID, bool) {
	if !s.requested {
		return 0, false
	}
	s.requested = false
	return s.next, true
}
