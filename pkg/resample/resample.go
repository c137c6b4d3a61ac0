// Package resample rebalances binary-labeled datasets. Every operation
// returns a new Dataset and leaves its input untouched. Output rows are the
// minority class first (original rows, then replicated or synthetic rows)
// followed by the selected majority rows in draw order.
package resample

import (
	"github.com/grexie/imbalance/pkg/balance"
	"github.com/grexie/imbalance/pkg/dataset"
	"github.com/grexie/imbalance/pkg/sampler"
	"github.com/grexie/imbalance/pkg/smote"
)

const DefaultSeed = 42

// Downsample keeps every minority row and round(n1*factor) majority rows
// drawn without replacement.
func Downsample(d dataset.Dataset, factor float64, seed int64) (dataset.Dataset, error) {
	if err := d.Validate(); err != nil {
		return dataset.Dataset{}, err
	}
	classes := d.Classes()

	target, err := balance.Downsample(len(classes.Minority), len(classes.Majority), factor)
	if err != nil {
		return dataset.Dataset{}, err
	}

	majority, err := sampler.WithoutReplacement(classes.Majority, target.Majority, seed)
	if err != nil {
		return dataset.Dataset{}, err
	}

	return d.Take(append(classes.Minority, majority...)), nil
}

// Upsample grows the minority class by round(n1*factor) rows drawn with
// replacement and draws as many majority rows without replacement, so the
// result is exactly balanced.
func Upsample(d dataset.Dataset, factor float64, seed int64) (dataset.Dataset, error) {
	if err := d.Validate(); err != nil {
		return dataset.Dataset{}, err
	}
	classes := d.Classes()

	target, err := balance.Upsample(len(classes.Minority), len(classes.Majority), factor)
	if err != nil {
		return dataset.Dataset{}, err
	}

	replicated, err := sampler.WithReplacement(classes.Minority, target.Replicated, seed)
	if err != nil {
		return dataset.Dataset{}, err
	}
	majority, err := sampler.WithoutReplacement(classes.Majority, target.Majority, seed)
	if err != nil {
		return dataset.Dataset{}, err
	}

	idxs := make([]int, 0, target.Total())
	idxs = append(idxs, classes.Minority...)
	idxs = append(idxs, replicated...)
	idxs = append(idxs, majority...)
	return d.Take(idxs), nil
}

// SyntheticBalance draws N=round(n1*factor) majority rows without
// replacement and tops the minority class up to N with rows interpolated
// between minority rows and their nearest minority neighbors.
func SyntheticBalance(d dataset.Dataset, factor float64, neighbors int, seed int64) (dataset.Dataset, error) {
	if err := d.Validate(); err != nil {
		return dataset.Dataset{}, err
	}
	classes := d.Classes()

	target, err := balance.Synthetic(len(classes.Minority), len(classes.Majority), factor)
	if err != nil {
		return dataset.Dataset{}, err
	}

	majority, err := sampler.WithoutReplacement(classes.Majority, target.Majority, seed)
	if err != nil {
		return dataset.Dataset{}, err
	}

	synthetic := [][]float64{}
	if target.Synthesized > 0 {
		if synthetic, err = smote.Synthesize(d.Rows(classes.Minority), target.Synthesized, neighbors, seed); err != nil {
			return dataset.Dataset{}, err
		}
	}

	return dataset.Concat(
		d.Take(classes.Minority),
		dataset.Labelled(synthetic, dataset.LabelMinority),
		d.Take(majority),
	), nil
}
