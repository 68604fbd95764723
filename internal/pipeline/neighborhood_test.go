package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"exoscope/internal/dataset"
)

func TestNeighborhoods_ClampsK(t *testing.T) {
	m := dataset.Matrix{{0}, {1}}
	clouds := Neighborhoods(m, 30)
	if len(clouds) != 2 {
		t.Fatalf("expected 2 clouds, got %d", len(clouds))
	}
	for i, c := range clouds {
		if len(c) != 2 {
			t.Errorf("cloud %d: size %d, want 2 (clamped)", i, len(c))
		}
	}
}

func TestNeighborhoods_SelfFirstAndOrdered(t *testing.T) {
	m := dataset.Matrix{{0, 0}, {3, 0}, {1, 0}}
	clouds := Neighborhoods(m, 2)

	// Sample 0: itself, then the point at distance 1.
	want := Cloud{{0, 0}, {1, 0}}
	if diff := cmp.Diff(want, clouds[0]); diff != "" {
		t.Errorf("cloud 0 mismatch (-want +got):\n%s", diff)
	}
	// Sample 1: itself, then the point at distance 2.
	want = Cloud{{3, 0}, {1, 0}}
	if diff := cmp.Diff(want, clouds[1]); diff != "" {
		t.Errorf("cloud 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighborhoods_TieBreakByIndex(t *testing.T) {
	// Points 0 and 2 are equidistant from point 1; the lower index wins.
	m := dataset.Matrix{{0}, {1}, {2}}
	clouds := Neighborhoods(m, 2)
	want := Cloud{{1}, {0}}
	if diff := cmp.Diff(want, clouds[1]); diff != "" {
		t.Errorf("tie-break mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighborhoods_Deterministic(t *testing.T) {
	m := dataset.Matrix{{0.5, 1}, {1.5, 0}, {2, 2}, {0, 0}}
	a := Neighborhoods(m, 3)
	b := Neighborhoods(m, 3)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("clouds differ across runs (-a +b):\n%s", diff)
	}
}

func TestNeighborhoods_SingleSample(t *testing.T) {
	clouds := Neighborhoods(dataset.Matrix{{1, 2}}, 30)
	if len(clouds) != 1 || len(clouds[0]) != 1 {
		t.Fatalf("expected one single-point cloud, got %v", clouds)
	}
}
