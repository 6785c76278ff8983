// Package kbi is a toolkit for Kirkwood-Buff integrals (KBIs) computed from
// radial distribution functions g(r) sampled in molecular simulations.
//
// The work is split into small packages:
//
//	rdf/      the RDF container, open and closed (Kruger) integration, readout
//	fscorr/   finite-size corrections: inverse-N extrapolation, van der Vegt
//	numeric/  trapezoid rules and least-squares statistics on gonum
//	odf/      the oscillatory decaying test function
//	fct/      fluctuation theory: mixture properties from KBIs
//	rdfio/    tables in, JSON records and xlsx workbooks out
//	config/   YAML job files and KBI_* environment overrides
//	pipeline/ parallel evaluation of a job
//	cmd/kbi/  the command line front end
//
// A typical closed-system evaluation:
//
//	x, err := rdf.New(r, gr, rdf.WithBoundary(rdf.Closed), rdf.WithLabel("O-O"))
//	...
//	if err := x.Integrate(); err != nil { ... }
//	if err := x.FindValues(rdf.WithUpper(1.0), rdf.WithLower(0.6)); err != nil { ... }
//	kbi, _ := x.ReturnKBI()
//
// Numerical packages never log and report failures as sentinel errors
// matched with errors.Is; only pipeline and cmd/kbi log, through zap.
package kbi
