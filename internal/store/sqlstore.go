package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultDBPath is where the CLI keeps its run log.
const DefaultDBPath = ".exoscope/runs.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at       TEXT NOT NULL,
	mission          TEXT NOT NULL,
	input_path       TEXT NOT NULL,
	output_path      TEXT NOT NULL,
	rows             INTEGER NOT NULL,
	defaulted_cells  INTEGER NOT NULL,
	missing_columns  TEXT NOT NULL DEFAULT '',
	compute_failures INTEGER NOT NULL,
	fallback_used    INTEGER NOT NULL,
	duration_ms      INTEGER NOT NULL
);
`

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and ensures the schema.
// Creates the parent directory (e.g. .exoscope) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SqlStore{db: db}, nil
}

func (s *SqlStore) Close() error { return s.db.Close() }

// RecordRun inserts one run row and returns its ID.
func (s *SqlStore) RecordRun(r *Run) (int64, error) {
	if r.CreatedAt == "" {
		r.CreatedAt = nowUTC()
	}
	res, err := s.db.Exec(`
		INSERT INTO runs (created_at, mission, input_path, output_path, rows,
			defaulted_cells, missing_columns, compute_failures, fallback_used, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.CreatedAt, r.Mission, r.InputPath, r.OutputPath, r.Rows,
		r.DefaultedCells, r.MissingColumns, r.ComputeFailures, boolInt(r.FallbackUsed), r.DurationMS)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}
	r.ID = id
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SqlStore) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, created_at, mission, input_path, output_path, rows,
			defaulted_cells, missing_columns, compute_failures, fallback_used, duration_ms
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var fallback int
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Mission, &r.InputPath, &r.OutputPath,
			&r.Rows, &r.DefaultedCells, &r.MissingColumns, &r.ComputeFailures,
			&fallback, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.FallbackUsed = fallback != 0
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
