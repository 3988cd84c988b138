package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/curry-rush/internal/clock"
	"github.com/vovakirdan/curry-rush/internal/core"
	"github.com/vovakirdan/curry-rush/internal/game/curry"
)

// Model is the Bubble Tea model that runs the game.
type Model struct {
	game     *curry.Game
	sched    *clock.Scheduler
	clock    clock.Clock
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	gestures *Gestures
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(game *curry.Game, sched *clock.Scheduler, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		sched:    sched,
		clock:    sched.Clock,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:   cfg,
		keys:     NewKeyMapper(),
		gestures: &Gestures{},
		help:     h,
		logger:   logger,
	}
}

// Init boots the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Boot(m.clock.Now())
	return tickCmd(m.sched.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.dispatch(m.gestures.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.game.Close()
		m.quitting = true
		return m, tea.Quit
	case ActionVolume:
		level := m.game.CycleVolume(m.clock.Now())
		m.logger.Debug("volume changed", "index", level)
	case ActionBite:
		for _, sig := range m.gestures.Tap() {
			m.dispatch(sig)
		}
	}
	return m, nil
}

// dispatch delivers one gesture signal to the game.
func (m Model) dispatch(sig core.Signal) {
	now := m.clock.Now()
	switch sig {
	case core.SignalGestureStart:
		m.game.GestureStart(now)
	case core.SignalGestureEnd:
		m.game.GestureEnd(now)
	}
}

// handleResize processes window resize events. The last row holds the help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game tick and schedules the next one, shortened by
// the time this one took.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	start := m.clock.Now()
	m.game.Tick(start)
	delay := m.sched.Observe(m.clock.Now().Sub(start))
	return m, tickCmd(delay)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	curry.DrawScene(m.screen, m.game.Scene())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// Run starts the Bubble Tea program for the game.
func Run(game *curry.Game, sched *clock.Scheduler, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, sched, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are gestures
	)

	started := time.Now()
	_, err := p.Run()
	model.logger.Debug("program exited", "uptime", time.Since(started), "ticks", sched.Ticks())
	return err
}
