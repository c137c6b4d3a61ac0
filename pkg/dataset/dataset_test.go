package dataset_test

import (
	"testing"

	"github.com/grexie/imbalance/pkg/dataset"
	"github.com/grexie/imbalance/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() dataset.Dataset {
	return dataset.Dataset{
		Features: [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}},
		Labels:   []int{0, 1, 0, 1},
	}
}

func TestNewValidates(t *testing.T) {
	_, err := dataset.New([][]float64{{1}, {2}}, []int{0})
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = dataset.New([][]float64{{1, 2}, {2}}, []int{0, 1})
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = dataset.New([][]float64{{1}, {2}}, []int{0, -1})
	require.ErrorIs(t, err, errs.ErrInvalidLabel)

	d, err := dataset.New([][]float64{{1}, {2}}, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 1, d.Width())
}

func TestClasses(t *testing.T) {
	classes := sample().Classes()
	assert.Equal(t, []int{1, 3}, classes.Minority)
	assert.Equal(t, []int{0, 2}, classes.Majority)
}

func TestTakeCopies(t *testing.T) {
	d := sample()
	out := d.Take([]int{3, 3, 0})
	assert.Equal(t, [][]float64{{7, 8}, {7, 8}, {1, 2}}, out.Features)
	assert.Equal(t, []int{1, 1, 0}, out.Labels)

	out.Features[0][0] = 100
	assert.Equal(t, 7.0, d.Features[3][0])
	assert.Equal(t, 7.0, out.Features[1][0])
}

func TestConcat(t *testing.T) {
	d := sample()
	synthetic := dataset.Labelled([][]float64{{9, 9}}, dataset.LabelMinority)
	out := dataset.Concat(d.Take([]int{1}), synthetic, d.Take([]int{0}))
	assert.Equal(t, [][]float64{{3, 4}, {9, 9}, {1, 2}}, out.Features)
	assert.Equal(t, []int{1, 1, 0}, out.Labels)

	synthetic.Features[0][0] = 0
	assert.Equal(t, 9.0, out.Features[1][0])
}

func TestClone(t *testing.T) {
	d := sample()
	c := d.Clone()
	assert.Equal(t, d, c)
	c.Features[0][1] = -1
	c.Labels[0] = 1
	assert.Equal(t, sample(), d)
}

func TestSummarize(t *testing.T) {
	s := dataset.Summarize(sample())
	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 2, s.Minority.Count)
	assert.Equal(t, []float64{5, 6}, s.Minority.Means)
	assert.Equal(t, []float64{3, 4}, s.Majority.Means)
	assert.Equal(t, 1.0, s.Ratio())

	empty := dataset.Summarize(dataset.Dataset{Features: [][]float64{{1}}, Labels: []int{0}})
	assert.Zero(t, empty.Ratio())
	assert.Equal(t, []float64{0}, empty.Minority.Means)
}
