package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("curry")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on empty store = %v, expected ErrNotFound", err)
	}
}

func TestStorePutOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("curry", "first"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("curry", "second"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("other", "untouched"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, err := store.Get("curry")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != "second" {
		t.Errorf("Get() = %q, expected %q", got, "second")
	}

	other, _ := store.Get("other")
	if other != "untouched" {
		t.Errorf("namespaces should be independent, got %q", other)
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	store.Put("curry", "data")
	if err := store.Delete("curry"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get("curry"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Delete, got %v", err)
	}
	if err := store.Delete("curry"); err != nil {
		t.Errorf("Delete() of missing record should succeed, got %v", err)
	}
}

func TestStoreRunsOrderedFastestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, ms := range []int{50000, 45230, 61000} {
		if _, err := store.SaveRun("curry", time.Duration(ms)*time.Millisecond, false); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("other", time.Second, true)

	runs, err := store.Runs("curry", 10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Elapsed != 45230*time.Millisecond {
		t.Errorf("fastest run = %v, expected 45.23s", runs[0].Elapsed)
	}
	if runs[2].Elapsed != 61*time.Second {
		t.Errorf("slowest run = %v, expected 61s", runs[2].Elapsed)
	}
	if runs[0].ID == "" || runs[0].ID == runs[1].ID {
		t.Errorf("runs should have unique IDs: %q %q", runs[0].ID, runs[1].ID)
	}

	n, err := store.RunCount("curry")
	if err != nil || n != 3 {
		t.Errorf("RunCount() = %d, %v", n, err)
	}
}

func TestStoreRunsLimitAndClear(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun("curry", time.Duration(i)*time.Second, i == 1)
	}

	runs, err := store.Runs("curry", 2)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs with limit, got %d", len(runs))
	}
	if !runs[0].Best {
		t.Error("fastest run should carry the best flag")
	}

	if err := store.ClearRuns("curry"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ = store.Runs("curry", 10)
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}
