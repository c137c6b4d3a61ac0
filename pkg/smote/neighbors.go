package smote

import (
	"cmp"
	"runtime"
	"slices"

	"github.com/grexie/imbalance/pkg/errs"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Neighbors holds, for every point, the positions of its k nearest other
// points ordered by Euclidean distance. Equal distances keep ascending
// position order.
type Neighbors [][]int

type candidate struct {
	idx  int
	dist float64
}

// NearestNeighbors computes the k nearest neighbors of every point by exhaustive
// search. Rows are searched in parallel but each row's result depends only on
// points, so the output is deterministic.
func NearestNeighbors(points [][]float64, k int) (Neighbors, error) {
	if k < 1 {
		return nil, errs.InvalidNeighbors(k)
	}
	if len(points) <= k {
		return nil, errs.InsufficientPool("%d points cannot have %d distinct neighbors each", len(points), k)
	}
	width := len(points[0])
	for i, p := range points {
		if len(p) != width {
			return nil, errs.DimensionMismatch("row %d has %d features, expected %d", i, len(p), width)
		}
	}

	out := make(Neighbors, len(points))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range points {
		g.Go(func() error {
			out[i] = nearest(points, i, k)
			return nil
		})
	}
	g.Wait()
	return out, nil
}

func nearest(points [][]float64, i, k int) []int {
	candidates := make([]candidate, 0, len(points)-1)
	for j, p := range points {
		if j == i {
			continue
		}
		candidates = append(candidates, candidate{idx: j, dist: floats.Distance(points[i], p, 2)})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})

	out := make([]int, k)
	for n := range out {
		out[n] = candidates[n].idx
	}
	return out
}
