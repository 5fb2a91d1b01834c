package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"go-orc-defense/internal/app"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/logging"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	logging.SetOutput(io.Discard)
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database file was not created: %v", err)
	}
	return store
}

func TestRecordAndTopRuns(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	runs := []Run{
		{ID: uuid.New(), Map: "meadow", Wave: 3, Kills: 10, EndedAt: base},
		{ID: uuid.New(), Map: "meadow", Wave: 5, Kills: 12, EndedAt: base.Add(time.Minute)},
		{ID: uuid.New(), Map: "meadow", Wave: 5, Kills: 20, EndedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if err := store.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(ctx, 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(top))
	}
	if top[0].ID != runs[2].ID || top[1].ID != runs[1].ID {
		t.Errorf("wrong order: %v, %v", top[0].ID, top[1].ID)
	}
	if !top[0].EndedAt.Equal(runs[2].EndedAt) {
		t.Errorf("ended_at = %v, want %v", top[0].EndedAt, runs[2].EndedAt)
	}

	if err := store.RecordRun(ctx, runs[0]); err == nil {
		t.Error("duplicate run id accepted")
	}
}

func TestRecorderStoresGameOver(t *testing.T) {
	store := openTemp(t)
	d := event.NewDispatcher()
	d.Subscribe(event.GameOver, NewRecorder(store))

	id := uuid.New()
	d.Dispatch(event.Event{Type: event.GameOver, Data: app.Summary{RunID: id, Map: "meadow", Wave: 4, Kills: 7}})
	d.Dispatch(event.Event{Type: event.GameOver, Data: "not a summary"})

	top, err := store.TopRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 1 || top[0].ID != id || top[0].Wave != 4 {
		t.Errorf("runs = %+v", top)
	}
	if top[0].EndedAt.IsZero() {
		t.Error("missing ended_at")
	}
}

func TestIsPostgres(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost/td": true,
		"postgresql://localhost/td":   true,
		"~/.orc-defense/runs.db":      false,
		"/tmp/postgres/runs.db":       false,
	}
	for dsn, want := range cases {
		if got := IsPostgres(dsn); got != want {
			t.Errorf("IsPostgres(%q) = %v, want %v", dsn, got, want)
		}
	}
}

func TestRebind(t *testing.T) {
	s := &Store{postgres: true}
	if got := s.rebind("a = ? AND b = ?"); got != "a = $1 AND b = $2" {
		t.Errorf("rebind = %q", got)
	}
	s.postgres = false
	if got := s.rebind("a = ?"); got != "a = ?" {
		t.Errorf("sqlite rebind = %q", got)
	}
}
