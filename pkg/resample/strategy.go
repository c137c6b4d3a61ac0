package resample

import (
	"fmt"
	"strings"

	"github.com/grexie/imbalance/pkg/balance"
	"github.com/grexie/imbalance/pkg/dataset"
)

type Strategy string

const (
	StrategyDownsample Strategy = "downsample"
	StrategyUpsample   Strategy = "upsample"
	StrategySMOTE      Strategy = "smote"
)

func ParseStrategy(s string) (Strategy, error) {
	switch strategy := Strategy(strings.ToLower(strings.TrimSpace(s))); strategy {
	case StrategyDownsample, StrategyUpsample, StrategySMOTE:
		return strategy, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

func (s Strategy) Policy() (balance.Policy, error) {
	switch s {
	case StrategyDownsample:
		return balance.PolicyDownsample, nil
	case StrategyUpsample:
		return balance.PolicyUpsample, nil
	case StrategySMOTE:
		return balance.PolicySynthetic, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", string(s))
	}
}

// Run applies the strategy named in params.
func Run(d dataset.Dataset, params Params) (dataset.Dataset, error) {
	switch params.Strategy {
	case StrategyDownsample:
		return Downsample(d, params.Factor, params.Seed)
	case StrategyUpsample:
		return Upsample(d, params.Factor, params.Seed)
	case StrategySMOTE:
		return SyntheticBalance(d, params.Factor, params.Neighbors, params.Seed)
	default:
		return dataset.Dataset{}, fmt.Errorf("unknown strategy %q", string(params.Strategy))
	}
}

// Plan reports the per-class target params would produce for d without
// drawing any rows.
func Plan(d dataset.Dataset, params Params) (balance.Target, error) {
	if err := d.Validate(); err != nil {
		return balance.Target{}, err
	}
	policy, err := params.Strategy.Policy()
	if err != nil {
		return balance.Target{}, err
	}
	classes := d.Classes()
	return balance.For(policy, len(classes.Minority), len(classes.Majority), params.Factor)
}
