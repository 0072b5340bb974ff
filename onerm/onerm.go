// Package onerm estimates a one-repetition maximum from a submaximal set
// using a fixed family of published regression formulas.
//
// Inputs are not validated. Degenerate weights or reps flow through the
// arithmetic and may produce NaN, ±Inf or negative estimates; Brzycki, for
// instance, is +Inf at 37 reps.
package onerm

import (
	"errors"
	"fmt"
)

const (
	// DefaultDecimals is the precision used when the caller has no preference.
	DefaultDecimals = 2
	// MaxDecimals is the largest precision Round accepts.
	MaxDecimals = 100

	// averagePrecision is applied to every formula before averaging,
	// independently of the precision requested for the final result.
	averagePrecision = 2
)

var (
	ErrUnknownFormula  = errors.New("unknown formula")
	ErrInvalidDecimals = errors.New("invalid decimals")
)

// OneRepMax estimates the 1RM for weight lifted for reps and rounds it to
// decimals places. An empty formula selects the average of all formulas.
func OneRepMax(weight, reps float64, decimals int, formula Formula) (float64, error) {
	if err := checkDecimals(decimals); err != nil {
		return 0, err
	}

	if formula == "" {
		return Round(Average(weight, reps), decimals), nil
	}

	fn, ok := formula.Func()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormula, string(formula))
	}

	return Round(fn(weight, reps), decimals), nil
}

// Average returns the mean of every formula's estimate. Each estimate is
// rounded to two decimals before summing; the mean itself is not rounded.
func Average(weight, reps float64) float64 {
	var sum float64
	for _, f := range formulaOrder {
		sum += Round(formulaFuncs[f](weight, reps), averagePrecision)
	}
	return sum / float64(len(formulaOrder))
}

// All returns the estimate of every formula rounded to decimals places.
// The map always holds one entry per formula.
func All(weight, reps float64, decimals int) (map[Formula]float64, error) {
	if err := checkDecimals(decimals); err != nil {
		return nil, err
	}

	out := make(map[Formula]float64, len(formulaOrder))
	for _, f := range formulaOrder {
		out[f] = Round(formulaFuncs[f](weight, reps), decimals)
	}
	return out, nil
}

func checkDecimals(decimals int) error {
	if decimals < 0 || decimals > MaxDecimals {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidDecimals, decimals, MaxDecimals)
	}
	return nil
}
