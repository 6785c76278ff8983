// SPDX-License-Identifier: MIT

package rdf

import (
	"fmt"
	"math"
)

const (
	opNew      = "New"
	opTruncate = "Truncate"
)

// DefaultBoundary mirrors the common case of g(r) from a closed simulation box.
const DefaultBoundary = Closed

// RDF is a radial distribution function together with the results derived
// from it. Construct it with New; the zero value has no samples and an
// unknown boundary.
type RDF struct {
	r  []float64
	gr []float64

	boundary Boundary
	meta     Metadata
	label    string

	// derived, nil until Integrate
	rint []float64
	kbi  []float64

	// nil until a successful FindValues; cleared on every FindValues call
	readout Readout
}

// Option configures New.
type Option func(*options)

// options collects Option values before validation in New.
type options struct {
	boundary Boundary
	label    string

	meta Metadata

	// raw values validated by New
	particles    int
	hasParticles bool
	box          float64
	hasBox       bool
}

// WithBoundary selects the boundary condition (default Closed).
func WithBoundary(b Boundary) Option {
	return func(o *options) { o.boundary = b }
}

// WithParticles sets the particle count N.
func WithParticles(n int) Option {
	return func(o *options) { o.particles, o.hasParticles = n, true }
}

// WithBoxLength sets the cubic box edge length; the volume is derived from it.
func WithBoxLength(l float64) Option {
	return func(o *options) { o.box, o.hasBox = l, true }
}

// WithSameSpecies sets the pair-type flag: true for X-X, false for X-Y.
func WithSameSpecies(same bool) Option {
	return func(o *options) { o.meta.sameSpecies, o.meta.hasSameSpecies = same, true }
}

// WithMetadata copies every present field of m. Later options override it.
func WithMetadata(m Metadata) Option {
	return func(o *options) {
		o.meta.sameSpecies, o.meta.hasSameSpecies = m.sameSpecies, m.hasSameSpecies
		o.particles, o.hasParticles = m.particles, m.hasParticles
		o.box, o.hasBox = m.boxLength, m.hasBox
	}
}

// WithLabel sets a display name.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// New builds an RDF from a radial grid r and its g(r) samples. Both slices are
// copied.
//
// Implementation:
//   - Stage 1: Validate both sequences independently (nil -> ErrNotSequence).
//   - Stage 2: Validate shape and grid (length, >= 2 samples, r[0] >= 0,
//     strictly increasing, all finite).
//   - Stage 3: Apply options and validate metadata.
//
// Errors:
//   - ErrNotSequence, ErrLengthMismatch, ErrTooShort, ErrNegativeRadius,
//     ErrNotIncreasing, ErrNaNInf, ErrUnknownBoundary, ErrBadMetadata.
//
// Complexity: O(N) time and space.
func New(r, gr []float64, opts ...Option) (*RDF, error) {
	// Stage 1 (Validate): each argument on its own.
	if r == nil {
		return nil, rdfErrorf(opNew, fmt.Errorf("r: %w", ErrNotSequence))
	}
	if gr == nil {
		return nil, rdfErrorf(opNew, fmt.Errorf("g(r): %w", ErrNotSequence))
	}

	// Stage 2 (Validate): shape and grid.
	if err := validateGrid(r, gr); err != nil {
		return nil, rdfErrorf(opNew, err)
	}

	// Stage 3 (Configure): options then metadata.
	o := options{boundary: DefaultBoundary}
	for _, opt := range opts {
		opt(&o)
	}
	if o.boundary != Open && o.boundary != Closed {
		return nil, rdfErrorf(opNew, ErrUnknownBoundary)
	}
	if o.hasParticles {
		if err := o.meta.setParticles(o.particles); err != nil {
			return nil, rdfErrorf(opNew, err)
		}
	}
	if o.hasBox {
		if err := o.meta.setBox(o.box); err != nil {
			return nil, rdfErrorf(opNew, err)
		}
	}

	return &RDF{
		r:        append([]float64(nil), r...),
		gr:       append([]float64(nil), gr...),
		boundary: o.boundary,
		meta:     o.meta,
		label:    o.label,
	}, nil
}

// validateGrid checks the sample invariants shared by New and Truncate.
func validateGrid(r, gr []float64) error {
	if len(r) != len(gr) {
		return fmt.Errorf("len(r)=%d len(g)=%d: %w", len(r), len(gr), ErrLengthMismatch)
	}
	if len(r) < 2 {
		return ErrTooShort
	}
	if r[0] < 0 {
		return fmt.Errorf("r[0]=%v: %w", r[0], ErrNegativeRadius)
	}
	for i := range r {
		if math.IsNaN(r[i]) || math.IsInf(r[i], 0) {
			return fmt.Errorf("r[%d]: %w", i, ErrNaNInf)
		}
		if math.IsNaN(gr[i]) || math.IsInf(gr[i], 0) {
			return fmt.Errorf("g[%d]: %w", i, ErrNaNInf)
		}
		if i > 0 && r[i] <= r[i-1] {
			return fmt.Errorf("r[%d]=%v after %v: %w", i, r[i], r[i-1], ErrNotIncreasing)
		}
	}
	return nil
}

// Truncate returns a new RDF holding the samples with r <= maxRadius. The
// boundary, metadata and label are kept; derived results are not.
//
// The van der Vegt correction is only meaningful up to about half the box
// length; Truncate is how callers cut the corrected function there.
func (x *RDF) Truncate(maxRadius float64) (*RDF, error) {
	n := 0
	for n < len(x.r) && x.r[n] <= maxRadius {
		n++
	}
	if n < 2 {
		return nil, rdfErrorf(opTruncate, fmt.Errorf("r <= %v: %w", maxRadius, ErrTooShort))
	}
	return &RDF{
		r:        append([]float64(nil), x.r[:n]...),
		gr:       append([]float64(nil), x.gr[:n]...),
		boundary: x.boundary,
		meta:     x.meta,
		label:    x.label,
	}, nil
}

// Len returns the number of samples.
func (x *RDF) Len() int { return len(x.r) }

// R returns a copy of the radial grid.
func (x *RDF) R() []float64 { return append([]float64(nil), x.r...) }

// GR returns a copy of the g(r) samples.
func (x *RDF) GR() []float64 { return append([]float64(nil), x.gr...) }

// Boundary returns the boundary condition fixed at construction.
func (x *RDF) Boundary() Boundary { return x.boundary }

// Metadata returns the optional simulation parameters.
func (x *RDF) Metadata() Metadata { return x.meta }

// Label returns the display name (may be empty).
func (x *RDF) Label() string { return x.label }

// Integrated reports whether Integrate has produced a curve.
func (x *RDF) Integrated() bool { return x.kbi != nil }

// IntegrationRadii returns a copy of the radii R of the running integral,
// or nil before Integrate.
func (x *RDF) IntegrationRadii() []float64 {
	if x.rint == nil {
		return nil
	}
	return append([]float64(nil), x.rint...)
}

// Curve returns a copy of the running integral G(R), or nil before Integrate.
func (x *RDF) Curve() []float64 {
	if x.kbi == nil {
		return nil
	}
	return append([]float64(nil), x.kbi...)
}

// Readout returns the last successful readout, or nil.
func (x *RDF) Readout() Readout { return x.readout }
