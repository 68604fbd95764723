// Package pipeline orchestrates the full transform from a raw survey upload
// to the augmented feature and prediction table: coercion, KNN imputation,
// standardization, local neighborhoods, parallel persistence extraction,
// prediction assembly.
package pipeline

import (
	"math"
	"sort"

	"exoscope/internal/dataset"
)

// ImputeKNN fills every NaN cell with the mean of that column over the
// sample's k nearest rows (by Euclidean distance on mutually observed
// columns, scaled for the unobserved share) that have the column observed.
// k is clamped to the batch size. Rows with no usable neighbor fall back to
// the column mean over observed values; a fully unobserved column imputes
// to 0. A NaN-free matrix is returned unchanged.
func ImputeKNN(m dataset.Matrix, k int) dataset.Matrix {
	n := len(m)
	if n == 0 {
		return m
	}
	hasMissing := false
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) {
				hasMissing = true
				break
			}
		}
		if hasMissing {
			break
		}
	}
	if !hasMissing {
		return m
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	width := len(m[0])
	colMeans := make([]float64, width)
	for j := 0; j < width; j++ {
		sum, cnt := 0.0, 0
		for i := 0; i < n; i++ {
			if !math.IsNaN(m[i][j]) {
				sum += m[i][j]
				cnt++
			}
		}
		if cnt > 0 {
			colMeans[j] = sum / float64(cnt)
		}
	}

	out := make(dataset.Matrix, n)
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}

	type neighbor struct {
		idx  int
		dist float64
	}
	for i := 0; i < n; i++ {
		for j := 0; j < width; j++ {
			if !math.IsNaN(m[i][j]) {
				continue
			}
			var cands []neighbor
			for r := 0; r < n; r++ {
				if r == i || math.IsNaN(m[r][j]) {
					continue
				}
				d, ok := nanEuclid(m[i], m[r])
				if !ok {
					continue
				}
				cands = append(cands, neighbor{idx: r, dist: d})
			}
			if len(cands) == 0 {
				out[i][j] = colMeans[j]
				continue
			}
			sort.SliceStable(cands, func(a, b int) bool {
				if cands[a].dist != cands[b].dist {
					return cands[a].dist < cands[b].dist
				}
				return cands[a].idx < cands[b].idx
			})
			take := k
			if take > len(cands) {
				take = len(cands)
			}
			sum := 0.0
			for _, nb := range cands[:take] {
				sum += m[nb.idx][j]
			}
			out[i][j] = sum / float64(take)
		}
	}
	return out
}

// nanEuclid is the Euclidean distance over mutually observed coordinates,
// scaled by width/observed so sparse overlaps are not artificially close.
// ok is false when the rows share no observed coordinate.
func nanEuclid(a, b []float64) (float64, bool) {
	sum, obs := 0.0, 0
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		d := a[i] - b[i]
		sum += d * d
		obs++
	}
	if obs == 0 {
		return 0, false
	}
	return math.Sqrt(sum * float64(len(a)) / float64(obs)), true
}
