package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/curry-rush/internal/audio"
	"github.com/vovakirdan/curry-rush/internal/clock"
	"github.com/vovakirdan/curry-rush/internal/config"
	"github.com/vovakirdan/curry-rush/internal/core"
	"github.com/vovakirdan/curry-rush/internal/game/curry"
)

type fixture struct {
	model Model
	game  *curry.Game
	fake  *clock.Fake
	sched *clock.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	game, err := curry.New(curry.Options{
		Config: config.DefaultCurryConfig(),
		Audio:  &audio.Recorder{},
	})
	if err != nil {
		t.Fatal(err)
	}
	fake := clock.NewFake(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	sched := clock.NewScheduler(15*time.Millisecond, 5*time.Millisecond)
	sched.Clock = fake

	cfg := core.DefaultConfig()
	m := NewModel(game, sched, cfg, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init returned no tick command")
	}
	return &fixture{model: m, game: game, fake: fake, sched: sched}
}

func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	f.model = model
	return cmd
}

func (f *fixture) tick(t *testing.T) {
	t.Helper()
	f.fake.Advance(15 * time.Millisecond)
	if cmd := f.send(t, TickMsg(f.fake.Now())); cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
}

func TestModelTickDrivesGame(t *testing.T) {
	f := newFixture(t)
	if f.game.Phase() != curry.PhaseTitle {
		t.Fatalf("phase after Init = %v", f.game.Phase())
	}
	f.tick(t)
	f.tick(t)
	if f.sched.Ticks() != 2 {
		t.Errorf("scheduler saw %d ticks, want 2", f.sched.Ticks())
	}
	if f.sched.LastWork() != 0 {
		t.Errorf("work under a frozen clock = %v", f.sched.LastWork())
	}
}

func TestModelKeyTapStartsGame(t *testing.T) {
	f := newFixture(t)
	f.tick(t)
	f.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if f.game.Phase() != curry.PhaseStart {
		t.Errorf("phase = %v, want start", f.game.Phase())
	}
}

func TestModelReloadKeyIgnored(t *testing.T) {
	f := newFixture(t)
	f.tick(t)
	f.send(t, tea.KeyMsg{Type: tea.KeyF5})
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlR})
	if f.game.Phase() != curry.PhaseTitle {
		t.Errorf("reload key reached the game: phase = %v", f.game.Phase())
	}
}

func TestModelMouseGesture(t *testing.T) {
	f := newFixture(t)
	f.tick(t)

	f.send(t, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if f.game.Phase() != curry.PhaseTitle {
		t.Fatal("press alone left the title")
	}
	f.send(t, tea.MouseMsg{Action: tea.MouseActionRelease})
	if f.game.Phase() != curry.PhaseStart {
		t.Errorf("phase = %v after click, want start", f.game.Phase())
	}
}

func TestModelVolumeKey(t *testing.T) {
	f := newFixture(t)
	f.tick(t)
	f.send(t, runeKey('v'))
	if v := f.game.Session().Volume; v != 1 {
		t.Errorf("volume index = %d, want 1", v)
	}
}

func TestModelQuit(t *testing.T) {
	f := newFixture(t)
	cmd := f.send(t, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if f.model.View() != "" {
		t.Error("view not empty after quit")
	}
	if next := f.send(t, TickMsg(f.fake.Now())); next != nil {
		t.Error("tick scheduled after quit")
	}
}

func TestModelView(t *testing.T) {
	f := newFixture(t)
	f.send(t, tea.WindowSizeMsg{Width: 80, Height: 24})
	f.tick(t)

	view := f.model.View()
	if !strings.Contains(view, "BEST") {
		t.Errorf("view lacks best time:\n%s", view)
	}
	if !strings.Contains(view, "eat") {
		t.Errorf("view lacks help footer")
	}
}
