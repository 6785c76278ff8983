// Package odf generates the oscillatory decaying function of Kruger et al.,
// J. Phys. Chem. Lett. 2013, 4, 235-238: a synthetic g(r) that is zero inside
// the core and oscillates around 1 with exponentially decaying amplitude.
//
// It is the standard reference input for checking integration and readout.
package odf

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrBadParameter indicates a non-positive or non-finite chi or sigma.
var ErrBadParameter = errors.New("odf: chi and sigma must be positive and finite")

const (
	// Core is the reduced radius below which g(r) is zero.
	Core = 19.0 / 20.0

	// phase shifts the cosine so the first peak sits just outside the core.
	phase = 21.0 / 20.0
)

// Value evaluates the function at radius r:
//
//	x = r/sigma
//	g = 1 + 1.5/x · exp((1-x)/chi) · cos(2π(x - 21/20))   for x >= 19/20
//	g = 0                                                 otherwise
//
// Parameters are not validated; use Generate for checked input.
func Value(r, chi, sigma float64) float64 {
	x := r / sigma
	if x < Core {
		return 0
	}
	return 1.0 + 1.5/x*math.Exp((1.0-x)/chi)*math.Cos(2.0*math.Pi*(x-phase))
}

// Generate evaluates the function on every radius.
// chi sets the decay length of the oscillations, sigma the particle diameter.
func Generate(radius []float64, chi, sigma float64) ([]float64, error) {
	if !positive(chi) || !positive(sigma) {
		return nil, fmt.Errorf("chi=%v sigma=%v: %w", chi, sigma, ErrBadParameter)
	}
	out := make([]float64, len(radius))
	for i, r := range radius {
		out[i] = Value(r, chi, sigma)
	}
	return out, nil
}

// Linspace returns n evenly spaced samples over [start, stop], both included.
// n < 2 yields nil.
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	out := floats.Span(make([]float64, n), start, stop)
	out[n-1] = stop
	return out
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
