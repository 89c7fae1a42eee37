// Package storage keeps the history of finished runs in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk: the history lives as long as the
// process does.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Source tells where a run came from.
type Source string

const (
	SourcePlay Source = "play" // interactive TUI run
	SourceSim  Source = "sim"  // headless autopilot run
)

// RunRecord is one finished run.
type RunRecord struct {
	ID         string // UUID, assigned by RecordRun when empty
	Source     Source
	Seed       int64
	Score      float64
	Difficulty int
	Cleared    int
	Jumps      int
	Duration   time.Duration // simulated play time
	CreatedAt  time.Time
}

// Summary aggregates all recorded runs.
type Summary struct {
	Runs         int
	BestScore    float64
	AvgScore     float64
	TotalCleared int
	TotalTime    time.Duration
}

// Store manages the in-memory run history.
type Store struct {
	db *sql.DB
}

// OpenMemory creates an empty run history.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score REAL NOT NULL,
			difficulty INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			duration_ns INTEGER NOT NULL DEFAULT 0,
			created_unix_ns INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database; the history is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
func (s *Store) RecordRun(r RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Source == "" {
		r.Source = SourcePlay
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, source, seed, score, difficulty, cleared, jumps, duration_ns, created_unix_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		string(r.Source),
		r.Seed,
		r.Score,
		r.Difficulty,
		r.Cleared,
		r.Jumps,
		int64(r.Duration),
		r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}

	return r.ID, nil
}

const selectRuns = `SELECT id, source, seed, score, difficulty, cleared, jumps, duration_ns, created_unix_ns FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var r RunRecord
	var source string
	var duration, created int64
	if err := row.Scan(&r.ID, &source, &r.Seed, &r.Score, &r.Difficulty,
		&r.Cleared, &r.Jumps, &duration, &created); err != nil {
		return RunRecord{}, err
	}
	r.Source = Source(source)
	r.Duration = time.Duration(duration)
	r.CreatedAt = time.Unix(0, created)
	return r, nil
}

// Best returns the highest-scoring run, or nil when nothing was recorded.
// Ties go to the earlier run.
func (s *Store) Best() (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(selectRuns + ` ORDER BY score DESC, seq ASC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return &r, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectRuns+` ORDER BY seq DESC LIMIT ?`, limit)
}

// Top returns up to limit runs ordered by score descending.
func (s *Store) Top(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectRuns+` ORDER BY score DESC, seq ASC LIMIT ?`, limit)
}

func (s *Store) query(q string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Summary aggregates every recorded run.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	var total int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(cleared), 0), COALESCE(SUM(duration_ns), 0)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.BestScore, &sum.AvgScore, &sum.TotalCleared, &total)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	sum.TotalTime = time.Duration(total)
	return sum, nil
}

// Clear deletes every recorded run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
