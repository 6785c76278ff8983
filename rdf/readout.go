// SPDX-License-Identifier: MIT

package rdf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kbi/numeric"
)

const opFindValues = "FindValues"

// ReadoutOption positions a readout.
type ReadoutOption func(*readoutParams)

type readoutParams struct {
	radius    float64
	hasRadius bool

	lower    float64
	hasLower bool

	upper    float64
	hasUpper bool
}

// AtRadius reads an open-system curve at radius R (default: the last sample).
func AtRadius(radius float64) ReadoutOption {
	return func(p *readoutParams) { p.radius, p.hasRadius = radius, true }
}

// WithLower sets the lower end of the closed-system fit window, in 1/R units.
// Without it the window extends to the last sample.
func WithLower(inv float64) ReadoutOption {
	return func(p *readoutParams) { p.lower, p.hasLower = inv, true }
}

// WithUpper sets the upper end of the closed-system fit window, in 1/R units.
// It is required for closed systems.
func WithUpper(inv float64) ReadoutOption {
	return func(p *readoutParams) { p.upper, p.hasUpper = inv, true }
}

// FindValues extracts a scalar KBI from the running integral. The previous
// readout is always discarded first; on error it stays unset.
//
// Open: the value is read at the first integration radius strictly greater
// than the requested radius. A request equal to the last radius, or no
// request at all, reads the last sample.
//
// Closed: G(R) is fitted linearly against 1/R between the samples selected
// by the upper and lower bound, and the intercept at 1/R = 0 is the KBI.
// Each bound selects the first sample whose 1/R is below it.
//
// Errors:
//   - ErrNotIntegrated, ErrBoundaryMismatch, ErrOutOfRange,
//     ErrMissingUpperBound, ErrInvertedBounds, ErrTooFewPoints,
//     ErrUnknownBoundary, and numeric regression errors.
func (x *RDF) FindValues(opts ...ReadoutOption) error {
	x.readout = nil

	if x.kbi == nil {
		return rdfErrorf(opFindValues, ErrNotIntegrated)
	}

	var p readoutParams
	for _, opt := range opts {
		opt(&p)
	}

	var (
		ro  Readout
		err error
	)
	switch x.boundary {
	case Open:
		ro, err = x.readOpen(p)
	case Closed:
		ro, err = x.readClosed(p)
	default:
		err = ErrUnknownBoundary
	}
	if err != nil {
		return rdfErrorf(opFindValues, err)
	}

	x.readout = ro
	return nil
}

// ReturnKBI returns the KBI of the last readout. ok is false when no readout
// exists, including after Integrate alone.
func (x *RDF) ReturnKBI() (kbi float64, ok bool) {
	if x.readout == nil {
		return 0, false
	}
	return x.readout.KBI(), true
}

// readOpen performs the direct lookup on an open-system curve.
func (x *RDF) readOpen(p readoutParams) (Readout, error) {
	if p.hasLower || p.hasUpper {
		return nil, fmt.Errorf("inverse-radius bounds on an open system: %w", ErrBoundaryMismatch)
	}

	last := len(x.rint) - 1
	index := last
	if p.hasRadius {
		if !finite(p.radius) || p.radius < 0 || p.radius > x.rint[last] {
			return nil, fmt.Errorf("radius %v not in [0, %v]: %w", p.radius, x.rint[last], ErrOutOfRange)
		}
		index = firstAbove(x.rint, p.radius)
		if index < 0 {
			index = last
		}
	}

	return OpenReadout{Value: x.kbi[index], Radius: x.rint[index], Index: index}, nil
}

// readClosed performs the 1/R extrapolation on a closed-system curve.
func (x *RDF) readClosed(p readoutParams) (Readout, error) {
	// Stage 1 (Validate): option set and bound domain.
	if p.hasRadius {
		return nil, fmt.Errorf("radius readout on a closed system: %w", ErrBoundaryMismatch)
	}
	if !p.hasUpper {
		return nil, ErrMissingUpperBound
	}
	if !finite(p.upper) {
		return nil, fmt.Errorf("upper bound %v: %w", p.upper, ErrOutOfRange)
	}
	if p.hasLower && !finite(p.lower) {
		return nil, fmt.Errorf("lower bound %v: %w", p.lower, ErrOutOfRange)
	}

	inv := make([]float64, len(x.rint))
	for i, v := range x.rint {
		inv[i] = 1.0 / v
	}
	last := len(inv) - 1

	if p.upper > inv[0] {
		return nil, fmt.Errorf("upper bound %v above 1/R=%v: %w", p.upper, inv[0], ErrOutOfRange)
	}
	if p.hasLower && p.lower < inv[last] {
		return nil, fmt.Errorf("lower bound %v below 1/R=%v: %w", p.lower, inv[last], ErrOutOfRange)
	}

	// Stage 2 (Locate): first sample below each bound. A bound no sample is
	// below (equal to the last 1/R) selects the last sample.
	hi := firstBelow(inv, p.upper)
	if hi < 0 {
		hi = last
	}
	lo := last
	if p.hasLower {
		if lo = firstBelow(inv, p.lower); lo < 0 {
			lo = last
		}
	}
	if hi > lo {
		return nil, fmt.Errorf("indices %d > %d: %w", hi, lo, ErrInvertedBounds)
	}
	if hi == lo {
		return nil, fmt.Errorf("index %d: %w", hi, ErrTooFewPoints)
	}

	// Stage 3 (Fit): G against 1/R over the closed index range.
	reg, err := numeric.LinearRegression(inv[hi:lo+1], x.kbi[hi:lo+1])
	if err != nil {
		return nil, err
	}

	return ClosedReadout{
		Value:             reg.Intercept,
		Slope:             reg.Slope,
		RValue:            reg.RValue,
		PValue:            reg.PValue,
		StdError:          reg.StdError,
		InterceptStdError: reg.InterceptStdError,
		IndexLimit:        [2]int{hi, lo},
		ValueLimit:        [2]float64{inv[hi], inv[lo]},
	}, nil
}

// firstAbove returns the first index with xs[i] > v, or -1.
func firstAbove(xs []float64, v float64) int {
	for i, x := range xs {
		if x > v {
			return i
		}
	}
	return -1
}

// firstBelow returns the first index with xs[i] < v, or -1.
func firstBelow(xs []float64, v float64) int {
	for i, x := range xs {
		if x < v {
			return i
		}
	}
	return -1
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
