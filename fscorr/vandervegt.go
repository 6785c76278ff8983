package fscorr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kbi/numeric"
	"github.com/katalvlaran/kbi/rdf"
)

const opCorrectVanDerVegt = "CorrectVanDerVegt"

// CorrectVanDerVegt rescales g(r) for the particles a finite box cannot hold
// beyond radius r:
//
//	ρ     = N/V,  δ = 1 for a self pair, 0 otherwise
//	c1(r) = N·(1 - (4πr³/3)/V)
//	c2(r) = ρ·4π ∫_0^r (g(s)-1) s² ds        (c2 at the first sample is 0)
//	g'(r) = g(r) · c1 / (c1 - c2 - δ)
//
// The correction is only meaningful up to about half the box length. It is
// applied on the whole grid; callers cut the result with (*rdf.RDF).Truncate.
//
// The result keeps the grid, metadata and label and has a Closed boundary.
//
// Errors:
//   - ErrNilRDF, ErrMissingParticles, ErrMissingBox, ErrMissingSameSpecies.
//   - ErrVanishingDenominator when c1 - c2 - δ is zero at some radius.
//   - A wrapped rdf construction error for any other non-finite result.
//
// Complexity: O(N) time and space.
func CorrectVanDerVegt(x *rdf.RDF) (*rdf.RDF, error) {
	// Stage 1 (Validate): every metadata field the formula needs.
	if x == nil {
		return nil, fscorrErrorf(opCorrectVanDerVegt, ErrNilRDF)
	}
	meta := x.Metadata()
	n, ok := meta.Particles()
	if !ok {
		return nil, fscorrErrorf(opCorrectVanDerVegt, ErrMissingParticles)
	}
	_, volume, err := meta.RequireBox()
	if err != nil {
		return nil, fscorrErrorf(opCorrectVanDerVegt, ErrMissingBox)
	}
	same, ok := meta.SameSpecies()
	if !ok {
		return nil, fscorrErrorf(opCorrectVanDerVegt, ErrMissingSameSpecies)
	}

	// Stage 2 (Prepare): density, Kronecker delta, running excess count.
	r, g := x.R(), x.GR()
	np := float64(n)
	rho := np / volume
	delta := 0.0
	if same {
		delta = 1.0
	}

	h := make([]float64, len(r))
	for i := range r {
		h[i] = (g[i] - 1.0) * r[i] * r[i]
	}
	running, err := numeric.CumulativeTrapezoid(r, h)
	if err != nil {
		return nil, fscorrErrorf(opCorrectVanDerVegt, err)
	}

	// Stage 3 (Execute): c2 is padded with a leading zero to the grid length.
	gr := make([]float64, len(r))
	for i := range r {
		c1 := np * (1.0 - (4.0*math.Pi*r[i]*r[i]*r[i]/3.0)/volume)
		c2 := 0.0
		if i > 0 {
			c2 = rho * 4.0 * math.Pi * running[i-1]
		}
		d := c1 - c2 - delta
		if d == 0 {
			return nil, fscorrErrorf(opCorrectVanDerVegt,
				fmt.Errorf("r=%v (index %d): %w", r[i], i, ErrVanishingDenominator))
		}
		gr[i] = g[i] * c1 / d
	}

	out, err := rdf.New(r, gr, rdf.WithMetadata(meta), rdf.WithLabel(x.Label()))
	if err != nil {
		return nil, fscorrErrorf(opCorrectVanDerVegt, err)
	}
	return out, nil
}
