package curry

import (
	"fmt"
	"time"

	"github.com/vovakirdan/curry-rush/internal/audio"
	"github.com/vovakirdan/curry-rush/internal/record"
)

// PhaseID identifies a phase of the game loop.
type PhaseID int

const (
	PhaseInit PhaseID = iota
	PhaseTitle
	PhaseStart
	PhasePlay
	PhaseEnd
	phaseCount
)

// String returns the phase name.
func (p PhaseID) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseTitle:
		return "title"
	case PhaseStart:
		return "start"
	case PhasePlay:
		return "play"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Phase is one state of the game loop. Enter runs once, on the tick the
// phase becomes current and right before its first Tick.
type Phase interface {
	ID() PhaseID
	Enter(s *Session)
	Tick(s *Session)
	GestureStart(s *Session)
	GestureEnd(s *Session)
	Draw(s *Session, sc *Scene)
}

// basePhase supplies no-op hooks.
type basePhase struct{}

func (basePhase) Enter(*Session)        {}
func (basePhase) Tick(*Session)         {}
func (basePhase) GestureStart(*Session) {}
func (basePhase) GestureEnd(*Session)   {}
func (basePhase) Draw(*Session, *Scene) {}

// initPhase runs once at boot and hands over to the title.
type initPhase struct{ basePhase }

func (initPhase) ID() PhaseID { return PhaseInit }

func (initPhase) Enter(s *Session) {
	s.Request(PhaseTitle)
}

// titlePhase scrolls an idle belt and waits for a tap.
type titlePhase struct{ basePhase }

func (titlePhase) ID() PhaseID { return PhaseTitle }

func (titlePhase) Enter(s *Session) {
	s.Belt.Reset()
	s.Hazard.Reset()
	s.Best = s.Records.Load().BestTime
	s.Anim.Count = s.Config.Gameplay.IdleHintBeats
}

func (titlePhase) Tick(s *Session) {
	if s.Anim.Count == 0 {
		s.Anim.Count = s.Config.Gameplay.IdleHintBeats
	}
	s.Belt.Advance(&s.Hazard)
}

func (titlePhase) GestureEnd(s *Session) {
	s.Request(PhaseStart)
}

func (titlePhase) Draw(s *Session, sc *Scene) {
	sc.Overlay.Best = FormatClock(s.Best)
	sc.Overlay.Hint = s.Anim.Frame%2 == 1
	if s.Anim.Count <= 3 {
		sc.Overlay.Drool = s.Anim.Count
	}
}

// startPhase counts down before play begins. The belt stands still.
type startPhase struct{ basePhase }

func (startPhase) ID() PhaseID { return PhaseStart }

func (startPhase) Enter(s *Session) {
	s.Belt.Reset()
	s.Quota = s.Config.Gameplay.Quota
	s.Elapsed = 0
	s.NewBest = false
	s.Cued = 0
}

func (startPhase) Tick(s *Session) {
	passed := int(s.Now.Sub(s.PhaseStart) / time.Second)
	s.Countdown = max(0, s.Config.Gameplay.Countdown-passed)
	if s.Countdown <= 0 {
		s.Request(PhasePlay)
		s.play(audio.CueStart)
		return
	}
	if s.Cued != s.Countdown {
		s.Cued = s.Countdown
		s.play(audio.CueCount)
	}
}

func (startPhase) Draw(s *Session, sc *Scene) {
	sc.Overlay.Countdown = s.Countdown
}

// playPhase is the timed run.
type playPhase struct{ basePhase }

func (playPhase) ID() PhaseID { return PhasePlay }

func (playPhase) Tick(s *Session) {
	s.Elapsed = min(s.Now.Sub(s.PhaseStart), record.MaxElapsed)
	s.Hazard.Expire(s.Now)
	s.Belt.Advance(&s.Hazard)
}

func (playPhase) GestureStart(s *Session) {
	out := Resolve(s.Now, s.Belt.HitTest(s.EatX()), &s.Hazard, s.Rules())
	s.Last = out
	if out == OutcomeBlocked {
		return
	}
	s.Anim.StartMouth(s.Now, out == OutcomeDrink)
	if c, ok := out.Cue(); ok {
		s.play(c)
	}
	if !out.Consumed() {
		return
	}
	s.Quota--
	if s.Quota == 0 {
		s.Request(PhaseEnd)
	}
}

func (playPhase) Draw(s *Session, sc *Scene) {
	drawRun(s, sc, false)
}

// drawRun fills the quota and clock overlay shared by play and end.
func drawRun(s *Session, sc *Scene, hideClock bool) {
	sc.Overlay.ShowQuota = true
	sc.Overlay.Quota = s.Quota
	if !hideClock {
		sc.Overlay.Clock = FormatClock(s.Elapsed)
	}
}

// endPhase records the result and holds the final screen for a short grace.
type endPhase struct{ basePhase }

func (endPhase) ID() PhaseID { return PhaseEnd }

func (endPhase) Enter(s *Session) {
	prev := s.Records.Load()
	s.NewBest = !prev.HasBest() || (s.Elapsed > 0 && s.Elapsed < prev.BestTime)
	if s.NewBest {
		elapsed := s.Elapsed
		if err := s.Records.Save(record.Patch{BestTime: &elapsed}); err != nil {
			s.Logger.Warn("saving best time failed", "error", err)
		}
		s.Best = elapsed
	}
	s.Logger.Info("run finished", "elapsed", s.Elapsed, "best", s.NewBest)
	if s.OnFinish != nil {
		s.OnFinish(s.Elapsed, s.NewBest)
	}

	s.Belt.Freeze()
	s.Anim.Count = s.Config.Gameplay.GraceBeats
	s.play(audio.CueEnd)
}

func (endPhase) GestureEnd(s *Session) {
	if s.Anim.Count > 0 {
		return
	}
	s.Request(PhaseTitle)
}

func (endPhase) Draw(s *Session, sc *Scene) {
	drawRun(s, sc, s.Anim.Count%2 == 1)
}
