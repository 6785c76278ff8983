package fscorr

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRDF indicates a nil input.
	ErrNilRDF = errors.New("fscorr: nil rdf")

	// ErrMissingParticles indicates an RDF without a particle count.
	ErrMissingParticles = errors.New("fscorr: particle count required")

	// ErrMissingBox indicates an RDF without box length and volume.
	ErrMissingBox = errors.New("fscorr: box length required")

	// ErrMissingSameSpecies indicates an RDF without the pair-type flag.
	ErrMissingSameSpecies = errors.New("fscorr: same-species flag required")

	// ErrResolutionMismatch indicates RDFs binned with different widths.
	ErrResolutionMismatch = errors.New("fscorr: rdfs must share the same resolution")

	// ErrEqualParticles indicates two systems of the same size; the 1/N
	// extrapolation between them is undefined.
	ErrEqualParticles = errors.New("fscorr: inverse-N correction needs different particle counts")

	// ErrVanishingDenominator indicates a van der Vegt denominator of zero,
	// which only happens far beyond half the box.
	ErrVanishingDenominator = errors.New("fscorr: van der Vegt denominator vanishes; truncate the rdf first")
)

// fscorrErrorf tags err with the operation that produced it.
func fscorrErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
