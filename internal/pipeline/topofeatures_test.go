package pipeline

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"exoscope/internal/topology"
)

func TestExtractFeatures_IndexAligned(t *testing.T) {
	clouds := []Cloud{
		{{0, 0}},
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		{{0, 0}, {3, 4}},
	}
	rows, failures, err := ExtractFeatures(context.Background(), clouds, 2)
	if err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}
	if failures != 0 {
		t.Errorf("failures = %d, want 0", failures)
	}
	if len(rows) != len(clouds) {
		t.Fatalf("expected %d rows, got %d", len(clouds), len(rows))
	}

	// Each slot must hold exactly the serial computation for that cloud,
	// regardless of worker scheduling.
	for i, cloud := range clouds {
		want := topology.Reduce(topology.RipsDiagram(cloud))
		if diff := cmp.Diff(want, rows[i]); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if rows[0] != (topology.FeatureRow{}) {
		t.Errorf("single-point cloud: expected zero row, got %+v", rows[0])
	}
}

func TestExtractFeatures_DefaultWorkerCount(t *testing.T) {
	clouds := []Cloud{{{0}}, {{1}}}
	rows, _, err := ExtractFeatures(context.Background(), clouds, 0)
	if err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(rows))
	}
}

func TestExtractFeatures_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	clouds := make([]Cloud, 64)
	for i := range clouds {
		clouds[i] = Cloud{{float64(i)}}
	}
	if _, _, err := ExtractFeatures(ctx, clouds, 1); err == nil {
		t.Error("expected error from canceled context")
	}
}
