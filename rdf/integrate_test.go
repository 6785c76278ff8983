// SPDX-License-Identifier: MIT

package rdf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbi/rdf"
)

// TestIntegrate_IdealGas: g ≡ 1 integrates to zero under both kernels.
func TestIntegrate_IdealGas(t *testing.T) {
	for _, b := range []rdf.Boundary{rdf.Open, rdf.Closed} {
		t.Run(b.String(), func(t *testing.T) {
			x := idealGas(t, b)

			rint := x.IntegrationRadii()
			curve := x.Curve()
			require.Len(t, rint, 9, "one point fewer than r")
			require.Len(t, curve, 9)
			assert.Equal(t, x.R()[1:], rint, "integration radii are r[1:]")
			for i, v := range curve {
				assert.InDelta(t, 0.0, v, 1e-12, "G(R_%d)", i)
			}
		})
	}
}

// TestIntegrate_OpenAnalytic: g ≡ 2 gives G(R) = 4πR³/3.
func TestIntegrate_OpenAnalytic(t *testing.T) {
	r := linspace(0, 1, 2001)
	x := MustRDF(t, r, constant(2, len(r)), rdf.WithBoundary(rdf.Open))
	require.NoError(t, x.Integrate())

	curve := x.Curve()
	assert.InDelta(t, 4*math.Pi/3, curve[len(curve)-1], 1e-5)
	assert.InDelta(t, 4*math.Pi*0.125/3, curve[999], 1e-5, "R = 0.5")
}

// TestIntegrate_ClosedAnalytic: g ≡ 2 under the Kruger weight gives
// G(R) = 4π ∫ r²(1 - 3r/2R + r³/2R³) dr = πR³/6.
func TestIntegrate_ClosedAnalytic(t *testing.T) {
	r := linspace(0, 1, 2001)
	x := MustRDF(t, r, constant(2, len(r)), rdf.WithBoundary(rdf.Closed))
	require.NoError(t, x.Integrate())

	curve := x.Curve()
	assert.InDelta(t, math.Pi/6, curve[len(curve)-1], 1e-5)
	assert.InDelta(t, math.Pi*0.125/6, curve[999], 1e-5, "R = 0.5")
}

// TestIntegrate_ClosedIsNotCumulative: the Kruger curve is not a running sum
// of the open curve, even on a two-interval grid.
func TestIntegrate_ClosedIsNotCumulative(t *testing.T) {
	r := []float64{0, 1, 2}
	gr := []float64{1, 2, 2}

	open := MustRDF(t, r, gr, rdf.WithBoundary(rdf.Open))
	closed := MustRDF(t, r, gr, rdf.WithBoundary(rdf.Closed))
	require.NoError(t, open.Integrate())
	require.NoError(t, closed.Integrate())

	// open: h = (0, 1, 4); G = 4π·(0.5, 3)
	assert.InDeltaSlice(t, []float64{2 * math.Pi, 12 * math.Pi}, open.Curve(), 1e-12)

	// closed, R=1: w(0)=1, w(1)=0 -> 4π·0.5·(0+0) = 0
	// closed, R=2: w(0)=1, w(.5)=0.3125, w(1)=0 -> 4π·(0.5·(0+0.3125) + 0.5·(0.3125+0)) = 4π·0.3125
	assert.InDeltaSlice(t, []float64{0, 4 * math.Pi * 0.3125}, closed.Curve(), 1e-12)
}

// TestIntegrate_Idempotent: repeated integration overwrites with equal values.
func TestIntegrate_Idempotent(t *testing.T) {
	x := MustRDF(t, linspace(0.1, 3, 50), linspace(0, 2, 50))
	require.NoError(t, x.Integrate())
	first := x.Curve()
	require.NoError(t, x.Integrate())
	assert.Equal(t, first, x.Curve())
}

// TestIntegrate_UnknownBoundary: the zero value fails loudly and stays unset.
func TestIntegrate_UnknownBoundary(t *testing.T) {
	var x rdf.RDF
	err := x.Integrate()
	assert.ErrorIs(t, err, rdf.ErrUnknownBoundary)
	assert.False(t, x.Integrated())
	assert.Nil(t, x.Curve())
	assert.Nil(t, x.IntegrationRadii())
}
