package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/curry-rush/internal/storage"
)

type fakeRuns struct {
	runs  []storage.RunEntry
	err   error
	calls int
}

func (f *fakeRuns) Runs(string, int) ([]storage.RunEntry, error) {
	f.calls++
	return f.runs, f.err
}

func TestRunRows(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	rows := RunRows([]storage.RunEntry{
		{ID: "3f2a9c1e-aaaa-bbbb-cccc-000000000000", Elapsed: 45230 * time.Millisecond, Best: true, CreatedAt: at},
		{ID: "short", Elapsed: 50 * time.Second, CreatedAt: at},
	})
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	want := []string{"#1", "00:45.2", "*", "Oct 19 09:30", "3f2a9c1e"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][2] != "" || rows[1][4] != "short" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestRunsModelEmptyAndError(t *testing.T) {
	m := NewRunsModel(&fakeRuns{}, "curry", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty history message missing")
	}

	m = NewRunsModel(&fakeRuns{err: errors.New("locked")}, "curry", 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load error not shown")
	}
}

func TestRunsModelRefreshAndQuit(t *testing.T) {
	src := &fakeRuns{runs: []storage.RunEntry{{ID: "a", Elapsed: time.Minute}}}
	m := NewRunsModel(src, "curry", 80, 24)
	if len(m.Runs()) != 1 {
		t.Fatalf("runs = %d", len(m.Runs()))
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(RunsModel)
	if src.calls != 2 {
		t.Errorf("source calls = %d, want 2", src.calls)
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(RunsModel)
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command = %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("quit did not end the view")
	}
}
