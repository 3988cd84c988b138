package curry

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Machine owns the phase set and dispatches lifecycle calls to the current
// phase. Transitions requested during a call are applied when it returns;
// the new phase is entered on the next Tick, fused with its first update.
type Machine struct {
	phases  [phaseCount]Phase
	current PhaseID
	entered bool
	booted  bool
	logger  *log.Logger
}

// NewMachine creates a machine with the standard phases.
func NewMachine(logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		phases: [phaseCount]Phase{
			PhaseInit:  initPhase{},
			PhaseTitle: titlePhase{},
			PhaseStart: startPhase{},
			PhasePlay:  playPhase{},
			PhaseEnd:   endPhase{},
		},
		logger: logger,
	}
}

// Boot runs the one-shot init phase. It panics if called twice.
func (m *Machine) Boot(s *Session) {
	if m.booted {
		panic("curry: machine booted twice")
	}
	m.current = PhaseInit
	s.PhaseStart = s.Now
	m.phases[PhaseInit].Enter(s)
	m.entered = true
	m.booted = true
	m.apply(s)
}

// Tick enters a freshly switched phase, then updates it.
func (m *Machine) Tick(s *Session) {
	m.mustBoot()
	p := m.phases[m.current]
	if !m.entered {
		s.PhaseStart = s.Now
		p.Enter(s)
		m.entered = true
	}
	p.Tick(s)
	m.apply(s)
}

// GestureStart dispatches a gesture start. Phases not yet entered ignore input.
func (m *Machine) GestureStart(s *Session) {
	m.mustBoot()
	if !m.entered {
		return
	}
	m.phases[m.current].GestureStart(s)
	m.apply(s)
}

// GestureEnd dispatches a gesture end.
func (m *Machine) GestureEnd(s *Session) {
	m.mustBoot()
	if !m.entered {
		return
	}
	m.phases[m.current].GestureEnd(s)
	m.apply(s)
}

// Draw lets the current phase fill its overlay.
func (m *Machine) Draw(s *Session, sc *Scene) {
	if !m.entered {
		return
	}
	m.phases[m.current].Draw(s, sc)
}

// Current returns the current phase.
func (m *Machine) Current() PhaseID {
	return m.current
}

// Entered reports whether the current phase has run its Enter hook.
func (m *Machine) Entered() bool {
	return m.entered
}

func (m *Machine) apply(s *Session) {
	next, ok := s.takeRequest()
	if !ok {
		return
	}
	if next < 0 || next >= phaseCount {
		panic(fmt.Sprintf("curry: unknown phase %d requested", int(next)))
	}
	if next == PhaseInit && m.booted {
		panic("curry: init phase requested after boot")
	}
	m.logger.Debug("phase transition", "from", m.current, "to", next)
	m.current = next
	m.entered = false
}

func (m *Machine) mustBoot() {
	if !m.booted {
		panic("curry: machine used before Boot")
	}
}
