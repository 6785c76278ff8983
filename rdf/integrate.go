// SPDX-License-Identifier: MIT

package rdf

import (
	"math"

	"github.com/katalvlaran/kbi/numeric"
)

const opIntegrate = "Integrate"

// fourPi is the solid angle of the radial shell.
const fourPi = 4.0 * math.Pi

// Integrate computes the running Kirkwood-Buff integral G(R) for every
// R in r[1:] and stores it on the RDF, replacing any earlier curve. The
// readout is left as is; FindValues recomputes it.
//
// Open:
//
//	G(R_i) = 4π ∫_0^{R_i} (g(r)-1) r² dr                 (cumulative trapezoid)
//
// Closed (Kruger):
//
//	G(R_i) = 4π ∫_0^{R_i} (g(r)-1) r² w(r/R_i) dr
//	w(x)   = 1 - 3x/2 + x³/2
//
// The Kruger weight depends on the upper bound, so every point is a full
// re-integration from the origin.
//
// Errors:
//   - ErrUnknownBoundary; the curves stay unset.
//
// Complexity: O(N) for Open, O(N²) for Closed.
func (x *RDF) Integrate() error {
	var (
		kbi []float64
		err error
	)

	switch x.boundary {
	case Open:
		kbi, err = integrateOpen(x.r, x.gr)
	case Closed:
		kbi, err = integrateClosed(x.r, x.gr)
	default:
		return rdfErrorf(opIntegrate, ErrUnknownBoundary)
	}
	if err != nil {
		return rdfErrorf(opIntegrate, err)
	}

	x.rint = append([]float64(nil), x.r[1:]...)
	x.kbi = kbi
	return nil
}

// integrand returns (g(r)-1)·r² per sample.
func integrand(r, gr []float64) []float64 {
	h := make([]float64, len(r))
	for j := range r {
		h[j] = (gr[j] - 1.0) * r[j] * r[j]
	}
	return h
}

// integrateOpen is the plain running integral, valid for open-ensemble g(r).
func integrateOpen(r, gr []float64) ([]float64, error) {
	kbi, err := numeric.CumulativeTrapezoid(r, integrand(r, gr))
	if err != nil {
		return nil, err
	}
	for i := range kbi {
		kbi[i] *= fourPi
	}
	return kbi, nil
}

// integrateClosed applies the Kruger kernel. Point i-1 of the result
// integrates samples 0..i with the weight tied to r[i].
func integrateClosed(r, gr []float64) ([]float64, error) {
	// Stage 1 (Prepare): the unweighted integrand is shared by all points.
	h := integrand(r, gr)
	n := len(r)
	kbi := make([]float64, n-1)
	w := make([]float64, n) // scratch, reused per upper bound

	// Stage 2 (Execute): one weighted integral per upper bound r[i].
	for i := 1; i < n; i++ {
		for j := 0; j <= i; j++ {
			q := r[j] / r[i]
			w[j] = h[j] * (1.0 - 1.5*q + 0.5*q*q*q)
		}
		v, err := numeric.Trapezoid(r[:i+1], w[:i+1])
		if err != nil {
			return nil, err
		}
		kbi[i-1] = fourPi * v
	}

	return kbi, nil
}
