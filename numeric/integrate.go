// SPDX-License-Identifier: MIT

package numeric

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
)

const (
	opTrapezoid           = "Trapezoid"
	opCumulativeTrapezoid = "CumulativeTrapezoid"
)

// Trapezoid returns ∫ y dx over the sampled grid x using the trapezoid rule.
//
// Errors:
//   - ErrLengthMismatch if len(x) != len(y).
//   - ErrTooShort if fewer than two samples are given.
//   - ErrNotSorted if x decreases anywhere.
//
// Complexity: O(n) time, O(1) extra space.
func Trapezoid(x, y []float64) (float64, error) {
	if err := validateSamples(x, y); err != nil {
		return 0, numericErrorf(opTrapezoid, err)
	}

	return integrate.Trapezoidal(x, y), nil
}

// CumulativeTrapezoid returns the running trapezoid integral of y over x.
// The result has len(x)-1 entries: out[k] is the integral from x[0] to x[k+1].
// The leading zero (the integral up to x[0]) is not part of the result.
//
// Complexity: O(n) time, O(n) space for the result.
func CumulativeTrapezoid(x, y []float64) ([]float64, error) {
	// Stage 1 (Validate): same contract as Trapezoid.
	if err := validateSamples(x, y); err != nil {
		return nil, numericErrorf(opCumulativeTrapezoid, err)
	}

	// Stage 2 (Execute): integrate each interval and accumulate.
	out := make([]float64, len(x)-1)
	var acc float64
	for k := 1; k < len(x); k++ {
		acc += integrate.Trapezoidal(x[k-1:k+1], y[k-1:k+1])
		out[k-1] = acc
	}

	return out, nil
}

// validateSamples checks the shared preconditions of the integration kernels.
// integrate.Trapezoidal panics on any of them.
func validateSamples(x, y []float64) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	if len(x) < 2 {
		return ErrTooShort
	}
	if !sort.Float64sAreSorted(x) {
		return ErrNotSorted
	}

	return nil
}
