package dataset

import (
	"github.com/grexie/imbalance/pkg/errs"
)

const (
	LabelMajority = 0
	LabelMinority = 1
)

// Dataset pairs a feature matrix with a binary label vector. Row i of Features
// corresponds to Labels[i].
type Dataset struct {
	Features [][]float64
	Labels   []int
}

// New validates features and labels and returns them as a Dataset. The slices
// are not copied.
func New(features [][]float64, labels []int) (Dataset, error) {
	d := Dataset{Features: features, Labels: labels}
	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

func (d Dataset) Len() int {
	return len(d.Labels)
}

// Width is the feature count, 0 for an empty dataset.
func (d Dataset) Width() int {
	if len(d.Features) == 0 {
		return 0
	}
	return len(d.Features[0])
}

func (d Dataset) Validate() error {
	if len(d.Features) != len(d.Labels) {
		return errs.DimensionMismatch("%d feature rows but %d labels", len(d.Features), len(d.Labels))
	}
	width := d.Width()
	for i, row := range d.Features {
		if len(row) != width {
			return errs.DimensionMismatch("row %d has %d features, expected %d", i, len(row), width)
		}
	}
	for i, label := range d.Labels {
		if label != LabelMajority && label != LabelMinority {
			return errs.InvalidLabel(i, label)
		}
	}
	return nil
}

// ClassIndexSet holds the row positions of each class in original row order.
type ClassIndexSet struct {
	Minority []int
	Majority []int
}

func (d Dataset) Classes() ClassIndexSet {
	c := ClassIndexSet{}
	for i, label := range d.Labels {
		switch label {
		case LabelMinority:
			c.Minority = append(c.Minority, i)
		case LabelMajority:
			c.Majority = append(c.Majority, i)
		}
	}
	return c
}

// Rows returns deep copies of the feature rows at idxs.
func (d Dataset) Rows(idxs []int) [][]float64 {
	out := make([][]float64, len(idxs))
	for i, idx := range idxs {
		out[i] = cloneRow(d.Features[idx])
	}
	return out
}

// Take builds a new Dataset from the rows at idxs, in the order given. The
// result shares no memory with d.
func (d Dataset) Take(idxs []int) Dataset {
	labels := make([]int, len(idxs))
	for i, idx := range idxs {
		labels[i] = d.Labels[idx]
	}
	return Dataset{Features: d.Rows(idxs), Labels: labels}
}

// Concat appends the rows of each part in order. Rows are copied.
func Concat(parts ...Dataset) Dataset {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := Dataset{
		Features: make([][]float64, 0, total),
		Labels:   make([]int, 0, total),
	}
	for _, p := range parts {
		for i := range p.Features {
			out.Features = append(out.Features, cloneRow(p.Features[i]))
			out.Labels = append(out.Labels, p.Labels[i])
		}
	}
	return out
}

// Labelled wraps rows that all share one label.
func Labelled(rows [][]float64, label int) Dataset {
	labels := make([]int, len(rows))
	for i := range labels {
		labels[i] = label
	}
	return Dataset{Features: rows, Labels: labels}
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	return Concat(d)
}

func cloneRow(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)
	return out
}
