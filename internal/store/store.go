// Package store persists one row per pipeline run for observability: how
// many cells were defaulted, whether the fallback predictor ran, how long
// the run took. The CLI reads it back with `exoscope runs`. Store failures
// never fail a classify run.
package store

import "time"

// Run is one recorded pipeline invocation.
type Run struct {
	ID              int64
	CreatedAt       string
	Mission         string
	InputPath       string
	OutputPath      string
	Rows            int
	DefaultedCells  int
	MissingColumns  string
	ComputeFailures int
	FallbackUsed    bool
	DurationMS      int64
}

// Store is the run-log contract.
type Store interface {
	RecordRun(r *Run) (int64, error)
	ListRuns(limit int) ([]Run, error)
	Close() error
}

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }
