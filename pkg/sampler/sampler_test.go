package sampler_test

import (
	"sync"
	"testing"

	"github.com/grexie/imbalance/pkg/errs"
	"github.com/grexie/imbalance/pkg/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pool(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i * 10
	}
	return out
}

func TestWithoutReplacementDistinct(t *testing.T) {
	p := pool(50)
	for _, k := range []int{1, 5, 7, 49, 50} {
		out, err := sampler.WithoutReplacement(p, k, 42)
		require.NoError(t, err)
		require.Len(t, out, k)

		seen := map[int]bool{}
		for _, v := range out {
			assert.Contains(t, p, v)
			assert.False(t, seen[v], "duplicate %d for k=%d", v, k)
			seen[v] = true
		}
	}
}

func TestWithoutReplacementDeterministic(t *testing.T) {
	p := pool(100)
	a, err := sampler.WithoutReplacement(p, 20, 7)
	require.NoError(t, err)

	// unrelated draws in between must not disturb the next call
	_, err = sampler.WithReplacement(p, 500, 99)
	require.NoError(t, err)

	b, err := sampler.WithoutReplacement(p, 20, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := sampler.WithoutReplacement(p, 20, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestWithoutReplacementInsufficientPool(t *testing.T) {
	_, err := sampler.WithoutReplacement(pool(3), 4, 42)
	require.ErrorIs(t, err, errs.ErrInsufficientPool)

	_, err = sampler.WithoutReplacement(pool(3), -1, 42)
	require.ErrorIs(t, err, errs.ErrInsufficientPool)

	out, err := sampler.WithoutReplacement([]int{}, 0, 42)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWithReplacement(t *testing.T) {
	p := pool(3)
	out, err := sampler.WithReplacement(p, 30, 42)
	require.NoError(t, err)
	require.Len(t, out, 30)
	for _, v := range out {
		assert.Contains(t, p, v)
	}

	again, err := sampler.WithReplacement(p, 30, 42)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = sampler.WithReplacement([]int{}, 1, 42)
	require.ErrorIs(t, err, errs.ErrInsufficientPool)

	empty, err := sampler.WithReplacement([]int{}, 0, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	p := pool(200)
	want, err := sampler.WithoutReplacement(p, 50, 3)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]int, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = sampler.WithoutReplacement(p, 50, 3)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
