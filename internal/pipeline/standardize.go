package pipeline

import (
	"math"

	"exoscope/internal/dataset"
)

// Standardize rescales every column to zero mean and unit variance across
// the batch (population variance). Degenerate columns (zero variance) map
// to all zeros rather than producing non-finite values.
func Standardize(m dataset.Matrix) dataset.Matrix {
	n := len(m)
	if n == 0 {
		return m
	}
	width := len(m[0])

	means := make([]float64, width)
	for j := 0; j < width; j++ {
		for i := 0; i < n; i++ {
			means[j] += m[i][j]
		}
		means[j] /= float64(n)
	}

	stds := make([]float64, width)
	for j := 0; j < width; j++ {
		for i := 0; i < n; i++ {
			d := m[i][j] - means[j]
			stds[j] += d * d
		}
		stds[j] = math.Sqrt(stds[j] / float64(n))
	}

	out := make(dataset.Matrix, n)
	for i := 0; i < n; i++ {
		row := make([]float64, width)
		for j := 0; j < width; j++ {
			if stds[j] > 0 {
				row[j] = (m[i][j] - means[j]) / stds[j]
			}
		}
		out[i] = row
	}
	return out
}
