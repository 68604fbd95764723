package pipeline

import (
	"math"
	"sort"

	"exoscope/internal/dataset"
)

// Cloud is one sample's local point cloud: the feature vectors of its k
// nearest neighbors in standardized space, itself included.
type Cloud [][]float64

// Neighborhoods builds one Cloud per sample by brute-force Euclidean search
// across the whole batch. k is clamped to [1, n]. Ties on distance break by
// original index (stable), so the result is deterministic for a fixed input
// ordering; the sample itself is always part of its own cloud (distance 0).
func Neighborhoods(m dataset.Matrix, k int) []Cloud {
	n := len(m)
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for c := range m[i] {
				d := m[i][c] - m[j][c]
				sum += d * d
			}
			d := math.Sqrt(sum)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	clouds := make([]Cloud, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		for j := range order {
			order[j] = j
		}
		sort.SliceStable(order, func(a, b int) bool {
			da, db := dist[i][order[a]], dist[i][order[b]]
			if da != db {
				return da < db
			}
			return order[a] < order[b]
		})
		cloud := make(Cloud, k)
		for j := 0; j < k; j++ {
			cloud[j] = m[order[j]]
		}
		clouds[i] = cloud
	}
	return clouds
}
