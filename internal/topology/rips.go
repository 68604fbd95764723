// Package topology computes Vietoris–Rips persistence diagrams over small
// point clouds and reduces them to the scalar features the classifier
// consumes. Homology dimensions 0 (components) and 1 (loops) are tracked.
//
// The filtration includes simplices up to dimension 2: vertices enter at 0,
// edges at their Euclidean length, triangles at their longest edge. In the
// full filtration every 1-cycle eventually dies, so the dimension-1 diagram
// is complete without essential classes; the single essential dimension-0
// class is dropped. Cost is cubic in cloud size, which stays small (the
// neighborhood k), so the boundary matrix is reduced directly.
package topology

import (
	"math"
	"sort"
)

// Pair is one finite persistence feature: a topological class born at Birth
// that dies at Death, in homology dimension Dim. Death >= Birth always;
// zero-lifetime pairs are not emitted.
type Pair struct {
	Birth float64
	Death float64
	Dim   int
}

// Diagram is the persistence diagram of one point cloud.
type Diagram []Pair

type simplex struct {
	filt  float64
	dim   int
	verts [3]int
}

// RipsDiagram computes the Vietoris–Rips persistence diagram of cloud under
// Euclidean distance, restricted to homology dimensions 0 and 1. The result
// is deterministic for a fixed point ordering. A cloud of one point has an
// empty diagram.
func RipsDiagram(cloud [][]float64) Diagram {
	n := len(cloud)
	if n < 2 {
		return nil
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclid(cloud[i], cloud[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	simps := buildFiltration(n, dist)
	return reduce(simps, n)
}

// buildFiltration enumerates vertices, edges and triangles sorted by
// (filtration value, dimension, vertex order). The sort is total, so the
// reduction below is deterministic.
func buildFiltration(n int, dist [][]float64) []simplex {
	simps := make([]simplex, 0, n+n*(n-1)/2+n*(n-1)*(n-2)/6)
	for i := 0; i < n; i++ {
		simps = append(simps, simplex{filt: 0, dim: 0, verts: [3]int{i, -1, -1}})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			simps = append(simps, simplex{filt: dist[i][j], dim: 1, verts: [3]int{i, j, -1}})
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				f := math.Max(dist[i][j], math.Max(dist[i][k], dist[j][k]))
				simps = append(simps, simplex{filt: f, dim: 2, verts: [3]int{i, j, k}})
			}
		}
	}
	sort.SliceStable(simps, func(a, b int) bool {
		sa, sb := simps[a], simps[b]
		if sa.filt != sb.filt {
			return sa.filt < sb.filt
		}
		if sa.dim != sb.dim {
			return sa.dim < sb.dim
		}
		if sa.verts[0] != sb.verts[0] {
			return sa.verts[0] < sb.verts[0]
		}
		if sa.verts[1] != sb.verts[1] {
			return sa.verts[1] < sb.verts[1]
		}
		return sa.verts[2] < sb.verts[2]
	})
	return simps
}

// reduce runs the standard persistence algorithm: each simplex's boundary
// column (over Z/2) is reduced against earlier columns sharing its pivot.
// A column that reduces to empty creates a class; a nonempty column kills
// the class created by its pivot simplex, yielding one (birth, death) pair.
func reduce(simps []simplex, n int) Diagram {
	vertexAt := make([]int, n)
	edgeAt := make(map[[2]int]int)
	for idx, s := range simps {
		switch s.dim {
		case 0:
			vertexAt[s.verts[0]] = idx
		case 1:
			edgeAt[[2]int{s.verts[0], s.verts[1]}] = idx
		}
	}

	cols := make([][]int, len(simps))
	for idx, s := range simps {
		switch s.dim {
		case 1:
			cols[idx] = sortedPair(vertexAt[s.verts[0]], vertexAt[s.verts[1]])
		case 2:
			i, j, k := s.verts[0], s.verts[1], s.verts[2]
			b := []int{
				edgeAt[[2]int{i, j}],
				edgeAt[[2]int{i, k}],
				edgeAt[[2]int{j, k}],
			}
			sort.Ints(b)
			cols[idx] = b
		}
	}

	var dgm Diagram
	pivotOwner := make(map[int]int)
	for j := range cols {
		col := cols[j]
		for len(col) > 0 {
			low := col[len(col)-1]
			owner, claimed := pivotOwner[low]
			if !claimed {
				break
			}
			col = symdiff(col, cols[owner])
		}
		cols[j] = col
		if len(col) == 0 {
			continue
		}
		low := col[len(col)-1]
		pivotOwner[low] = j
		birth, death := simps[low].filt, simps[j].filt
		if simps[low].dim <= 1 && death > birth {
			dgm = append(dgm, Pair{Birth: birth, Death: death, Dim: simps[low].dim})
		}
	}
	return dgm
}

// symdiff merges two sorted index sets over Z/2 (shared entries cancel).
func symdiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func sortedPair(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	return []int{a, b}
}

func euclid(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
