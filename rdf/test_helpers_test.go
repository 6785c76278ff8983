package rdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbi/rdf"
)

// linspace returns n evenly spaced samples over [a, b].
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}

// constant returns n copies of v.
func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// MustRDF builds an RDF or fails the test.
func MustRDF(t *testing.T, r, gr []float64, opts ...rdf.Option) *rdf.RDF {
	t.Helper()
	x, err := rdf.New(r, gr, opts...)
	require.NoError(t, err)
	return x
}

// idealGas is the uncorrelated reference: r = linspace(0.1, 1.1, 10), g ≡ 1.
func idealGas(t *testing.T, b rdf.Boundary) *rdf.RDF {
	t.Helper()
	x := MustRDF(t, linspace(0.1, 1.1, 10), constant(1, 10), rdf.WithBoundary(b))
	require.NoError(t, x.Integrate())
	return x
}
