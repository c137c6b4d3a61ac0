package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFactor is returned when a balancing factor is not strictly positive.
	ErrInvalidFactor = errors.New("invalid factor")
	// ErrInsufficientPool is returned when a draw needs more rows than a pool holds,
	// when a class is empty, or when there are too few minority rows to synthesize from.
	ErrInsufficientPool = errors.New("insufficient pool")
	// ErrDimensionMismatch is returned when features, labels or predictions disagree in shape.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidLabel      = errors.New("invalid label")
	ErrInvalidNeighbors  = errors.New("invalid neighbor count")
)

func InvalidFactor(factor float64) error {
	return fmt.Errorf("%w: factor must be > 0, got %v", ErrInvalidFactor, factor)
}

func InsufficientPool(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientPool, fmt.Sprintf(format, a...))
}

func DimensionMismatch(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrDimensionMismatch, fmt.Sprintf(format, a...))
}

func InvalidLabel(row int, label int) error {
	return fmt.Errorf("%w: row %d has label %d, expected 0 or 1", ErrInvalidLabel, row, label)
}

func InvalidNeighbors(k int) error {
	return fmt.Errorf("%w: need at least 1 neighbor, got %d", ErrInvalidNeighbors, k)
}

// IsInput reports whether err was caused by the caller's input rather than by an
// internal or I/O failure.
func IsInput(err error) bool {
	return errors.Is(err, ErrInvalidFactor) ||
		errors.Is(err, ErrInsufficientPool) ||
		errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrInvalidLabel) ||
		errors.Is(err, ErrInvalidNeighbors)
}
