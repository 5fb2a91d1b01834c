// Package storage keeps the history of finished runs.
// A run is a summary only; game state is never persisted.
// Postgres DSNs go through lib/pq, anything else is a SQLite file
// opened with the pure-Go modernc.org/sqlite driver.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"  // Postgres driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"go-orc-defense/internal/app"
	"go-orc-defense/internal/logging"
)

var storeLog = logging.New("store")

// Store manages the database connection for the run history.
type Store struct {
	db       *sql.DB
	postgres bool
}

// Run is one finished game.
type Run struct {
	ID        uuid.UUID
	Map       string
	Wave      int
	Kills     int
	Escapes   int
	Coins     int
	Buildings int
	Ticks     int
	EndedAt   time.Time
}

// FromSummary converts a game summary into a history record.
func FromSummary(s app.Summary) Run {
	return Run{
		ID:        s.RunID,
		Map:       s.Map,
		Wave:      s.Wave,
		Kills:     s.Kills,
		Escapes:   s.Escapes,
		Coins:     s.Coins,
		Buildings: s.Buildings,
		Ticks:     s.Ticks,
		EndedAt:   s.EndedAt,
	}
}

// IsPostgres reports whether dsn points at a Postgres server.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open connects to Postgres or creates/opens a SQLite file at dsn.
// For SQLite, ~ is expanded and parent directories are created.
// Migrations run on every open.
func Open(dsn string) (*Store, error) {
	driver := "sqlite"
	postgres := IsPostgres(dsn)
	if postgres {
		driver = "postgres"
	} else {
		path, err := prepareSQLitePath(dsn)
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, postgres: postgres}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	storeLog.Debug("opened", "driver", driver)
	return store, nil
}

func prepareSQLitePath(dbPath string) (string, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return dbPath, nil
}

// migrate creates the schema. The DDL is valid for both SQLite and Postgres.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			map TEXT NOT NULL,
			wave INTEGER NOT NULL,
			kills INTEGER NOT NULL,
			escapes INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			buildings INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(wave DESC, kills DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run.
func (s *Store) RecordRun(ctx context.Context, r Run) error {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO runs (run_id, map, wave, kills, escapes, coins, buildings, ticks, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		r.ID.String(), r.Map, r.Wave, r.Kills, r.Escapes, r.Coins, r.Buildings, r.Ticks,
		r.EndedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// TopRuns returns the best runs: highest wave first, then most kills.
func (s *Store) TopRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT run_id, map, wave, kills, escapes, coins, buildings, ticks, ended_at
		 FROM runs
		 ORDER BY wave DESC, kills DESC, ended_at ASC
		 LIMIT ?`),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			id      string
			endedAt string
		)
		if err := rows.Scan(&id, &r.Map, &r.Wave, &r.Kills, &r.Escapes, &r.Coins, &r.Buildings, &r.Ticks, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
		}
		if t, err := time.Parse(time.RFC3339Nano, endedAt); err == nil {
			r.EndedAt = t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// rebind turns ? placeholders into $1, $2, ... for Postgres.
func (s *Store) rebind(query string) string {
	if !s.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
