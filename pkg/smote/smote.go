// Package smote generates synthetic minority rows by interpolating between a
// point and one of its nearest neighbors.
package smote

import (
	"github.com/grexie/imbalance/pkg/errs"
	"github.com/grexie/imbalance/pkg/sampler"
	"gonum.org/v1/gonum/floats"
)

const DefaultNeighbors = 5

// Synthesize returns count new rows. For each row it draws, in order, a base
// point b uniformly from rows, one of b's k nearest neighbors c uniformly, and
// a gap u in [0,1), then emits b + u*(c-b). All draws come from one stream
// seeded with seed.
//
// Rows are not deduplicated. When all k nearest neighbors of b are exact
// duplicates of b, every row drawn from b equals b.
func Synthesize(rows [][]float64, count, k int, seed int64) ([][]float64, error) {
	if k < 1 {
		return nil, errs.InvalidNeighbors(k)
	}
	if len(rows) < 2 {
		return nil, errs.InsufficientPool("need at least 2 minority rows to interpolate, have %d", len(rows))
	}
	if len(rows) <= k {
		return nil, errs.InsufficientPool("need more than %d minority rows for %d neighbors, have %d", k, k, len(rows))
	}
	if count < 0 {
		return nil, errs.InsufficientPool("cannot synthesize %d rows", count)
	}

	neighbors, err := NearestNeighbors(rows, k)
	if err != nil {
		return nil, err
	}

	rng := sampler.New(seed)
	width := len(rows[0])
	diff := make([]float64, width)
	out := make([][]float64, count)
	for i := range out {
		b := rng.IntN(len(rows))
		c := neighbors[b][rng.IntN(k)]
		u := rng.Float64()

		floats.SubTo(diff, rows[c], rows[b])
		out[i] = floats.AddScaledTo(make([]float64, width), rows[b], u, diff)
	}
	return out, nil
}
