package balance

import (
	"fmt"
	"math"

	"github.com/grexie/imbalance/pkg/errs"
)

type Policy int

const (
	PolicyDownsample Policy = iota
	PolicyUpsample
	PolicySynthetic
)

func (p Policy) String() string {
	switch p {
	case PolicyDownsample:
		return "downsample"
	case PolicyUpsample:
		return "upsample"
	case PolicySynthetic:
		return "smote"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Target is the per-class row count a resampled dataset must reach.
//
// Minority rows beyond the originals are Replicated (drawn with replacement)
// or Synthesized (interpolated); the two are never both non-zero.
type Target struct {
	Minority    int
	Majority    int
	Replicated  int
	Synthesized int
}

func (t Target) Total() int {
	return t.Minority + t.Majority
}

// Count rounds n*f half to even. n*f must be within the int range.
func Count(n int, f float64) int {
	return int(math.RoundToEven(float64(n) * f))
}

// fits reports whether n + round(m*f) is at most limit, compared in float64 so
// huge factors cannot wrap.
func fits(n, m int, f float64, limit int) bool {
	return float64(n)+math.RoundToEven(float64(m)*f) <= float64(limit)
}

func check(n1, n0 int, f float64) error {
	if !(f > 0) || math.IsInf(f, 0) {
		return errs.InvalidFactor(f)
	}
	if n1 == 0 {
		return errs.InsufficientPool("no minority rows")
	}
	if n0 == 0 {
		return errs.InsufficientPool("no majority rows")
	}
	return nil
}

// Downsample keeps all n1 minority rows and round(n1*f) majority rows.
func Downsample(n1, n0 int, f float64) (Target, error) {
	if err := check(n1, n0, f); err != nil {
		return Target{}, err
	}
	if !fits(0, n1, f, n0) {
		return Target{}, errs.InsufficientPool("downsample needs %v majority rows, have %d", math.RoundToEven(float64(n1)*f), n0)
	}
	majority := Count(n1, f)
	return Target{Minority: n1, Majority: majority}, nil
}

// Upsample grows the minority class to n1+round(n1*f) by replication and
// draws the same number of majority rows.
func Upsample(n1, n0 int, f float64) (Target, error) {
	if err := check(n1, n0, f); err != nil {
		return Target{}, err
	}
	if !fits(n1, n1, f, n0) {
		return Target{}, errs.InsufficientPool("upsample needs %v majority rows, have %d", float64(n1)+math.RoundToEven(float64(n1)*f), n0)
	}
	replicated := Count(n1, f)
	target := n1 + replicated
	return Target{Minority: target, Majority: target, Replicated: replicated}, nil
}

// Synthetic balances both classes at N=round(n1*f), synthesizing N-n1
// minority rows.
func Synthetic(n1, n0 int, f float64) (Target, error) {
	if err := check(n1, n0, f); err != nil {
		return Target{}, err
	}
	if !fits(0, n1, f, n0) {
		return Target{}, errs.InsufficientPool("synthetic balance needs %v majority rows, have %d", math.RoundToEven(float64(n1)*f), n0)
	}
	target := Count(n1, f)
	if target < n1 {
		return Target{}, errs.InsufficientPool("synthetic balance target %d is below the %d minority rows", target, n1)
	}
	return Target{Minority: target, Majority: target, Synthesized: target - n1}, nil
}

// For computes the target for policy p.
func For(p Policy, n1, n0 int, f float64) (Target, error) {
	switch p {
	case PolicyDownsample:
		return Downsample(n1, n0, f)
	case PolicyUpsample:
		return Upsample(n1, n0, f)
	case PolicySynthetic:
		return Synthetic(n1, n0, f)
	default:
		return Target{}, fmt.Errorf("unknown policy %s", p)
	}
}
