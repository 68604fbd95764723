package pipeline

import (
	"math"
	"testing"

	"exoscope/internal/dataset"
)

func TestStandardize_MeanAndVariance(t *testing.T) {
	m := dataset.Matrix{{1, 10}, {2, 20}, {3, 30}}
	got := Standardize(m)

	for j := 0; j < 2; j++ {
		mean, varsum := 0.0, 0.0
		for i := range got {
			mean += got[i][j]
		}
		mean /= float64(len(got))
		for i := range got {
			d := got[i][j] - mean
			varsum += d * d
		}
		varsum /= float64(len(got))
		if math.Abs(mean) > 1e-12 {
			t.Errorf("col %d: mean = %v, want 0", j, mean)
		}
		if math.Abs(varsum-1) > 1e-12 {
			t.Errorf("col %d: variance = %v, want 1", j, varsum)
		}
	}
	// Both columns are the same shape, so standardized values match.
	for i := range got {
		if math.Abs(got[i][0]-got[i][1]) > 1e-12 {
			t.Errorf("row %d: columns diverge: %v", i, got[i])
		}
	}
}

func TestStandardize_DegenerateColumn(t *testing.T) {
	m := dataset.Matrix{{5, 1}, {5, 2}}
	got := Standardize(m)
	for i := range got {
		if got[i][0] != 0 {
			t.Errorf("zero-variance column: row %d = %v, want 0", i, got[i][0])
		}
		if math.IsNaN(got[i][1]) || math.IsInf(got[i][1], 0) {
			t.Errorf("row %d: non-finite value %v", i, got[i][1])
		}
	}
}

func TestStandardize_SingleRow(t *testing.T) {
	got := Standardize(dataset.Matrix{{3, -7}})
	if got[0][0] != 0 || got[0][1] != 0 {
		t.Errorf("single row should standardize to zeros, got %v", got[0])
	}
}
