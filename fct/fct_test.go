package fct_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kbi/fct"
)

const tol = 1e-12

func TestBinary_IdealMixture(t *testing.T) {
	p, err := fct.Binary{C1: 2, C2: 3}.Compute()
	require.NoError(t, err)

	assert.InDelta(t, 0.4, p.X1, tol)
	assert.InDelta(t, 0.6, p.X2, tol)
	assert.InDelta(t, 1.0, p.ThermodynamicFactor, tol)
	assert.InDelta(t, 0.2, p.PartialMolarVolume1, tol)
	assert.InDelta(t, 0.2, p.PartialMolarVolume2, tol)
	assert.InDelta(t, 1/0.6, p.DMu2DX2, tol)
	assert.InDelta(t, 0.5, p.DMu1DC1, tol)
	assert.InDelta(t, 1.0/3.0, p.DMu2DC2, tol)
	assert.InDelta(t, 0.2, p.IsothermalCompressibility, tol)
}

func TestBinary_HandComputed(t *testing.T) {
	// D = 2, F = 1.75, η = 4.
	p, err := fct.Binary{G11: 1, G22: 2, G12: 0.5, C1: 1, C2: 1}.Compute()
	require.NoError(t, err)

	assert.InDelta(t, 0.5, p.ThermodynamicFactor, tol)
	assert.InDelta(t, 0.625, p.PartialMolarVolume1, tol)
	assert.InDelta(t, 0.375, p.PartialMolarVolume2, tol)
	assert.InDelta(t, 1.0, p.DMu2DX2, tol)
	assert.InDelta(t, 1/1.5, p.DMu1DC1, tol)
	assert.InDelta(t, 0.4, p.DMu2DC2, tol)
	assert.InDelta(t, 1.4375, p.IsothermalCompressibility, tol)
}

func TestBinary_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   fct.Binary
		want error
	}{
		{"zero c1", fct.Binary{C1: 0, C2: 1}, fct.ErrBadConcentration},
		{"negative c2", fct.Binary{C1: 1, C2: -1}, fct.ErrBadConcentration},
		{"nan", fct.Binary{C1: math.NaN(), C2: 1}, fct.ErrBadConcentration},
		{"eta vanishes", fct.Binary{G12: 1, C1: 1, C2: 1}, fct.ErrSingular},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.in.Compute()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTernary_IdealMixture(t *testing.T) {
	p, err := fct.Ternary{C1: 1, C2: 2, C3: 3}.Compute()
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1.0 / 6, 2.0 / 6, 3.0 / 6}, p.X[:], tol)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, p.ThermodynamicFactors[:], tol)
	assert.InDeltaSlice(t, []float64{1.0 / 6, 1.0 / 6, 1.0 / 6}, p.PartialMolarVolumes[:], tol)
	assert.InDelta(t, 1.0/6, p.IsothermalCompressibility, tol)

	want := mat.NewSymDense(3, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3})
	assert.True(t, mat.EqualApprox(want, p.B, tol))
	assert.InDelta(t, 6.0, p.Determinant, 1e-9)
}

// Equal KBIs make every D_ij vanish, so the volumes reduce to 1/c.
func TestTernary_UniformKBIs(t *testing.T) {
	const k = 2.0
	p, err := fct.Ternary{G11: k, G22: k, G33: k, G12: k, G13: k, G23: k, C1: 1, C2: 2, C3: 3}.Compute()
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1.0 / 6, 1.0 / 6, 1.0 / 6}, p.PartialMolarVolumes[:], tol)
	assert.InDelta(t, (1+k*6)/6, p.IsothermalCompressibility, tol)
}

func TestTernary_BMatrix(t *testing.T) {
	p, err := fct.Ternary{G11: 1, G22: 2, G33: 3, G12: 0.5, G13: 0.25, G23: -1, C1: 1, C2: 2, C3: 0.5}.Compute()
	require.NoError(t, err)

	assert.InDelta(t, 1+1*1, p.B.At(0, 0), tol)
	assert.InDelta(t, 2+4*2, p.B.At(1, 1), tol)
	assert.InDelta(t, 0.5+0.25*3, p.B.At(2, 2), tol)
	assert.InDelta(t, 1*2*0.5, p.B.At(0, 1), tol)
	assert.InDelta(t, 1*0.5*0.25, p.B.At(2, 0), tol)
	assert.InDelta(t, 2*0.5*-1, p.B.At(1, 2), tol)
	assert.Equal(t, p.B.At(0, 1), p.B.At(1, 0))
	assert.InDelta(t, mat.Det(p.B), p.Determinant, tol)
}

func TestTernary_BadConcentration(t *testing.T) {
	_, err := fct.Ternary{C1: 1, C2: 1, C3: 0}.Compute()
	assert.ErrorIs(t, err, fct.ErrBadConcentration)
}

func TestPrintProperties(t *testing.T) {
	b, err := fct.Binary{C1: 1, C2: 1}.Compute()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, b.PrintProperties(&buf))
	assert.Contains(t, buf.String(), "Thermodynamic factor: 1\n")
	assert.Contains(t, buf.String(), "Partial molar volume (Comp. 2): 0.5\n")

	tp, err := fct.Ternary{C1: 1, C2: 1, C3: 2}.Compute()
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, tp.PrintProperties(&buf))
	out := buf.String()
	assert.Contains(t, out, " Thermodynamic factor 4: 1\n")
	assert.Contains(t, out, " Component 3: 0.25\n")
	assert.Contains(t, out, " B-matrix\n")
	assert.Contains(t, out, " Determinant: 2.000000\n")
}
