// Package fscorr applies finite-size corrections to radial distribution
// functions before they are integrated.
//
// Two methods are provided:
//
//   - CorrectInverseN   - linear extrapolation in 1/N between two simulations of
//     different size (Kruger et al.).
//   - CorrectVanDerVegt - single-system correction of the g(r) tail for the
//     particles missing from a finite box (Ganguly & van der Vegt).
//
// Both are pure: they return a new *rdf.RDF and never modify their inputs.
// The result satisfies every rdf.New invariant, so it can be integrated and
// read out like a raw RDF. Unmet preconditions are reported as sentinel errors
// and no RDF is returned.
package fscorr
