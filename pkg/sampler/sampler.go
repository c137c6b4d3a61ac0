// Package sampler draws seeded, reproducible samples from a pool. Every call
// owns its random stream, so calls never observe each other and may run
// concurrently.
package sampler

import (
	"math/rand/v2"

	"github.com/grexie/imbalance/pkg/errs"
	"gonum.org/v1/gonum/stat/sampleuv"
)

const streamSalt = 0x9e3779b97f4a7c15

// Source returns a fresh PCG source for seed.
func Source(seed int64) rand.Source {
	return rand.NewPCG(uint64(seed), streamSalt)
}

// New returns a fresh generator for seed.
func New(seed int64) *rand.Rand {
	return rand.New(Source(seed))
}

// WithoutReplacement returns k distinct elements of pool drawn uniformly at
// random, in draw order.
func WithoutReplacement[T any](pool []T, k int, seed int64) ([]T, error) {
	if k < 0 {
		return nil, errs.InsufficientPool("cannot draw %d elements", k)
	}
	if k > len(pool) {
		return nil, errs.InsufficientPool("cannot draw %d distinct elements from a pool of %d", k, len(pool))
	}
	out := make([]T, k)
	if k == 0 {
		return out, nil
	}

	idxs := make([]int, k)
	sampleuv.WithoutReplacement(idxs, len(pool), Source(seed))
	for i, idx := range idxs {
		out[i] = pool[idx]
	}
	return out, nil
}

// WithReplacement returns k elements of pool, each drawn uniformly and
// independently. k may exceed len(pool).
func WithReplacement[T any](pool []T, k int, seed int64) ([]T, error) {
	if k < 0 {
		return nil, errs.InsufficientPool("cannot draw %d elements", k)
	}
	out := make([]T, k)
	if k == 0 {
		return out, nil
	}
	if len(pool) == 0 {
		return nil, errs.InsufficientPool("cannot draw %d elements from an empty pool", k)
	}

	rng := New(seed)
	for i := range out {
		out[i] = pool[rng.IntN(len(pool))]
	}
	return out, nil
}
