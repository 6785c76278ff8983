// SPDX-License-Identifier: MIT

package rdf

import (
	"errors"
	"fmt"
)

// Construction errors. New returns no RDF when any of these occur.
var (
	// ErrNotSequence indicates a missing (nil) r or g(r) sample slice.
	ErrNotSequence = errors.New("rdf: argument is not a sample sequence")

	// ErrLengthMismatch indicates that r and g(r) differ in length.
	ErrLengthMismatch = errors.New("rdf: r and g(r) length mismatch")

	// ErrTooShort indicates fewer than two samples.
	ErrTooShort = errors.New("rdf: at least two samples are required")

	// ErrNotIncreasing indicates a radial grid that is not strictly increasing.
	ErrNotIncreasing = errors.New("rdf: radii must be strictly increasing")

	// ErrNegativeRadius indicates a radial grid starting below zero.
	ErrNegativeRadius = errors.New("rdf: radii must be non-negative")

	// ErrNaNInf indicates a NaN or ±Inf sample.
	ErrNaNInf = errors.New("rdf: NaN or Inf encountered")

	// ErrBadMetadata indicates a non-positive particle count or box length.
	ErrBadMetadata = errors.New("rdf: invalid metadata")
)

// Configuration and precondition errors.
var (
	// ErrUnknownBoundary indicates a boundary condition that is neither Open nor Closed.
	ErrUnknownBoundary = errors.New("rdf: unknown boundary condition")

	// ErrMissingMetadata indicates that an optional metadata field required by
	// an operation is absent.
	ErrMissingMetadata = errors.New("rdf: missing metadata")
)

// Readout errors. FindValues leaves the readout unset when any of these occur.
var (
	// ErrNotIntegrated indicates a readout attempt before Integrate.
	ErrNotIntegrated = errors.New("rdf: not integrated")

	// ErrOutOfRange indicates a readout position outside the sampled domain.
	ErrOutOfRange = errors.New("rdf: position outside sampled range")

	// ErrMissingUpperBound indicates a closed-system readout without an upper bound.
	ErrMissingUpperBound = errors.New("rdf: upper bound required for closed-system readout")

	// ErrBoundaryMismatch indicates readout options of the other boundary condition.
	ErrBoundaryMismatch = errors.New("rdf: readout option does not match boundary condition")

	// ErrInvertedBounds indicates a lower bound that selects a sample before the upper one.
	ErrInvertedBounds = errors.New("rdf: lower bound lies above upper bound")

	// ErrTooFewPoints indicates an extrapolation window holding a single sample.
	ErrTooFewPoints = errors.New("rdf: extrapolation window needs at least two samples")
)

// rdfErrorf tags err with the operation that produced it.
func rdfErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
