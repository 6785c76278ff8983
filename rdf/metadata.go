// SPDX-License-Identifier: MIT

package rdf

import (
	"fmt"
	"math"
)

// Metadata carries the optional simulation parameters of an RDF. Each field
// has an explicit presence flag: the finite-size corrections are only legal
// when the fields they need are present.
type Metadata struct {
	particles    int
	hasParticles bool

	boxLength float64
	volume    float64
	hasBox    bool

	sameSpecies    bool
	hasSameSpecies bool
}

// Particles returns the particle count and whether it is set.
func (m Metadata) Particles() (int, bool) { return m.particles, m.hasParticles }

// BoxLength returns the cubic box edge length and whether it is set.
func (m Metadata) BoxLength() (float64, bool) { return m.boxLength, m.hasBox }

// Volume returns BoxLength³ and whether the box is set.
func (m Metadata) Volume() (float64, bool) { return m.volume, m.hasBox }

// SameSpecies reports whether the RDF describes a self pair (X-X) and whether
// the flag is set at all.
func (m Metadata) SameSpecies() (bool, bool) { return m.sameSpecies, m.hasSameSpecies }

// RequireParticles returns the particle count or ErrMissingMetadata.
func (m Metadata) RequireParticles() (int, error) {
	if !m.hasParticles {
		return 0, fmt.Errorf("particle count: %w", ErrMissingMetadata)
	}
	return m.particles, nil
}

// RequireBox returns the box length and volume or ErrMissingMetadata.
func (m Metadata) RequireBox() (length, volume float64, err error) {
	if !m.hasBox {
		return 0, 0, fmt.Errorf("box length: %w", ErrMissingMetadata)
	}
	return m.boxLength, m.volume, nil
}

// RequireSameSpecies returns the pair-type flag or ErrMissingMetadata.
func (m Metadata) RequireSameSpecies() (bool, error) {
	if !m.hasSameSpecies {
		return false, fmt.Errorf("same-species flag: %w", ErrMissingMetadata)
	}
	return m.sameSpecies, nil
}

// setBox stores the box length and its volume.
func (m *Metadata) setBox(l float64) error {
	if !(l > 0) || math.IsInf(l, 0) {
		return fmt.Errorf("box length %v: %w", l, ErrBadMetadata)
	}
	m.boxLength, m.volume, m.hasBox = l, l*l*l, true
	return nil
}

// setParticles stores the particle count.
func (m *Metadata) setParticles(n int) error {
	if n <= 0 {
		return fmt.Errorf("particle count %d: %w", n, ErrBadMetadata)
	}
	m.particles, m.hasParticles = n, true
	return nil
}
