package topology

import "math"

// FeatureRow holds the four scalar topological features derived from one
// persistence diagram. All values are finite; empty dimensions yield zeros.
type FeatureRow struct {
	EntropyDim0 float64
	EntropyDim1 float64
	TotalDim0   float64
	TotalDim1   float64
}

// Values returns the row in output-column order:
// entropy dim 0, entropy dim 1, total dim 0, total dim 1.
func (r FeatureRow) Values() [4]float64 {
	return [4]float64{r.EntropyDim0, r.EntropyDim1, r.TotalDim0, r.TotalDim1}
}

// Finite reports whether every feature is a finite number.
func (r FeatureRow) Finite() bool {
	for _, v := range r.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Reduce collapses a persistence diagram to its FeatureRow: per homology
// dimension, the persistence entropy and the total persistence of the
// diagram's lifetimes.
func Reduce(d Diagram) FeatureRow {
	return FeatureRow{
		EntropyDim0: PersistenceEntropy(d, 0),
		EntropyDim1: PersistenceEntropy(d, 1),
		TotalDim0:   TotalPersistence(d, 0),
		TotalDim1:   TotalPersistence(d, 1),
	}
}

// TotalPersistence sums (death - birth) over the diagram's features in the
// given dimension. Never negative.
func TotalPersistence(d Diagram, dim int) float64 {
	total := 0.0
	for _, p := range d {
		if p.Dim == dim {
			total += p.Death - p.Birth
		}
	}
	return total
}

// PersistenceEntropy is the Shannon entropy (natural log) of the diagram's
// lifetime distribution in the given dimension: each lifetime is normalized
// by the dimension's total lifetime mass. An empty dimension, or one whose
// mass is zero, contributes 0. The result lies in [0, ln m] for m features.
func PersistenceEntropy(d Diagram, dim int) float64 {
	mass := TotalPersistence(d, dim)
	if mass <= 0 {
		return 0
	}
	h := 0.0
	for _, p := range d {
		if p.Dim != dim {
			continue
		}
		q := (p.Death - p.Birth) / mass
		if q > 0 {
			h -= q * math.Log(q)
		}
	}
	if h < 0 {
		return 0
	}
	return h
}
