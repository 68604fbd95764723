package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SqlStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)

	first := &Run{
		Mission: "KEPLER", InputPath: "in.csv", OutputPath: "out.csv",
		Rows: 5, DefaultedCells: 2, MissingColumns: "koi_teq",
		ComputeFailures: 0, FallbackUsed: true, DurationMS: 120,
	}
	id, err := s.RecordRun(first)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if id == 0 {
		t.Error("expected nonzero run ID")
	}
	if _, err := s.RecordRun(&Run{Mission: "TESS", InputPath: "b.csv", OutputPath: "c.csv"}); err != nil {
		t.Fatalf("RecordRun second: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].Mission != "TESS" || runs[1].Mission != "KEPLER" {
		t.Errorf("unexpected order: %s, %s", runs[0].Mission, runs[1].Mission)
	}
	got := runs[1]
	if !got.FallbackUsed || got.DefaultedCells != 2 || got.MissingColumns != "koi_teq" || got.CreatedAt == "" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestListRuns_LimitAndEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.ListRuns(5)
	if err != nil {
		t.Fatalf("ListRuns empty: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	for i := 0; i < 4; i++ {
		if _, err := s.RecordRun(&Run{Mission: "K2"}); err != nil {
			t.Fatal(err)
		}
	}
	runs, err = s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected limit 2, got %d", len(runs))
	}
}
