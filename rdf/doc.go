// SPDX-License-Identifier: MIT

// Package rdf holds radial distribution functions and turns them into
// Kirkwood-Buff integrals (KBIs).
//
// An *RDF pairs a radial grid r with sampled g(r) values and optional
// simulation metadata (particle count, box length, self/cross pair flag).
// The pipeline on a single RDF is:
//
//	g, _ := rdf.New(r, gr, rdf.WithBoundary(rdf.Closed))
//	_ = g.Integrate()                                      // running KBI curve G(R)
//	_ = g.FindValues(rdf.WithLower(0.29), rdf.WithUpper(0.4))
//	kbi, ok := g.ReturnKBI()
//
// Boundary conditions:
//
//   - Open   - the plain running integral 4π∫(g-1)r² dr, read out at a radius.
//   - Closed - the Kruger finite-volume kernel, extrapolated linearly in 1/R to
//     the infinite-box limit (Kruger et al., J. Phys. Chem. Lett. 2013, 4, 235).
//
// The boundary is fixed at construction and selects both the integration and
// the readout algorithm.
//
// Complexity:
//
//   - Open integration:   O(N) time.
//   - Closed integration: O(N²) time. Every point of the curve is a fresh
//     integral from the origin under a kernel tied to its own upper bound.
//   - Readout:            O(N) time.
//
// An *RDF is not safe for concurrent mutation. Distinct values share no state
// and may be processed in parallel.
package rdf
