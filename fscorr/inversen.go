package fscorr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kbi/rdf"
)

const opCorrectInverseN = "CorrectInverseN"

// BinTolerance is the largest accepted difference between the bin widths of
// two RDFs combined by CorrectInverseN.
const BinTolerance = 1e-4

// InverseNSuffix is appended to the label of an inverse-N corrected RDF.
const InverseNSuffix = " invN-corrected"

// CorrectInverseN combines two RDFs of the same pair sampled in boxes with
// different particle counts and extrapolates g(r) to the infinite system.
//
// The RDF with the shorter grid is the reference (ref), the other the
// extension (ext); on equal lengths a is the reference. Over the first
// len(ref) samples:
//
//	Δ(r)     = (g_ref(r) - g_ext(r)) / (N_ext/N_ref - 1)
//	g_corr(r) = g_ref(r) - Δ(r)
//
// The result lives on ref's grid, carries ref's metadata, a Closed boundary
// and ref's label with InverseNSuffix.
//
// Errors:
//   - ErrNilRDF, ErrMissingParticles, ErrResolutionMismatch,
//     ErrEqualParticles, or a wrapped rdf construction error.
//
// Complexity: O(N) time and space.
func CorrectInverseN(a, b *rdf.RDF) (*rdf.RDF, error) {
	// Stage 1 (Validate): both present with particle counts.
	if a == nil || b == nil {
		return nil, fscorrErrorf(opCorrectInverseN, ErrNilRDF)
	}
	na, okA := a.Metadata().Particles()
	nb, okB := b.Metadata().Particles()
	if !okA || !okB {
		return nil, fscorrErrorf(opCorrectInverseN, ErrMissingParticles)
	}

	// Stage 1 (Validate): same resolution.
	ra, rb := a.R(), b.R()
	wa, wb := ra[1]-ra[0], rb[1]-rb[0]
	if math.Abs(wa-wb) > BinTolerance {
		return nil, fscorrErrorf(opCorrectInverseN,
			fmt.Errorf("bin widths %v and %v: %w", wa, wb, ErrResolutionMismatch))
	}

	// Stage 1 (Validate): the extrapolation needs two sizes.
	if na == nb {
		return nil, fscorrErrorf(opCorrectInverseN,
			fmt.Errorf("N=%d: %w", na, ErrEqualParticles))
	}

	// Stage 2 (Prepare): the shorter grid is the reference.
	ref, ext := a, b
	nRef, nExt := na, nb
	if a.Len() > b.Len() {
		ref, ext = b, a
		nRef, nExt = nb, na
	}
	gRef, gExt := ref.GR(), ext.GR()
	scale := float64(nExt)/float64(nRef) - 1.0

	// Stage 3 (Execute): subtract the size-dependent part.
	gr := make([]float64, len(gRef))
	for i := range gRef {
		delta := (gRef[i] - gExt[i]) / scale
		gr[i] = gRef[i] - delta
	}

	out, err := rdf.New(ref.R(), gr,
		rdf.WithMetadata(ref.Metadata()),
		rdf.WithLabel(ref.Label()+InverseNSuffix),
	)
	if err != nil {
		return nil, fscorrErrorf(opCorrectInverseN, err)
	}
	return out, nil
}
