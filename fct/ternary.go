package fct

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

const opTernaryCompute = "Ternary.Compute"

// Ternary holds the KBIs and number densities of a three-component mixture.
type Ternary struct {
	G11, G22, G33 float64
	G12, G13, G23 float64
	C1, C2, C3    float64
}

// TernaryProperties are the fluctuation-theory results for a Ternary.
type TernaryProperties struct {
	X [3]float64 // mole fractions

	// ThermodynamicFactors holds Γ0..Γ3.
	ThermodynamicFactors [4]float64

	PartialMolarVolumes [3]float64

	// IsothermalCompressibility is k·T·κ_T.
	IsothermalCompressibility float64

	// B is the Ben-Naim matrix B_ij = c_i·δ_ij + c_i·c_j·G_ij.
	B *mat.SymDense

	// Determinant of B.
	Determinant float64
}

// Compute evaluates the closed-form three-component expressions.
//
// The pair terms use D_ij = G_ii + G_jj - 2·G_ij, the same form as Binary.
// pykbi's fct.py writes G_ii·G_jj - 2·G_ij here, so its ternary results
// differ from these whenever the KBIs are nonzero.
func (t Ternary) Compute() (TernaryProperties, error) {
	// Stage 1 (Validate)
	if err := checkConcentrations(t.C1, t.C2, t.C3); err != nil {
		return TernaryProperties{}, fctErrorf(opTernaryCompute, err)
	}

	// Stage 2 (Prepare): pair and triple combinations of the KBIs.
	c1, c2, c3 := t.C1, t.C2, t.C3
	g11, g22, g33 := t.G11, t.G22, t.G33
	g12, g13, g23 := t.G12, t.G13, t.G23
	ctot := c1 + c2 + c3

	d12 := g11 + g22 - 2.0*g12
	d13 := g11 + g33 - 2.0*g13
	d23 := g22 + g33 - 2.0*g23
	d123 := g11*g22 + g11*g33 + g22*g33 +
		2.0*g12*g13 + 2.0*g12*g23 + 2.0*g13*g23 -
		g12*g12 - g13*g13 - g23*g23 -
		2.0*g11*g23 - 2.0*g22*g13 - 2.0*g33*g12

	f12 := g11*g22 - g12*g12
	f13 := g11*g33 - g13*g13
	f23 := g22*g33 - g23*g23
	f123 := g11*g22*g33 + 2.0*g12*g13*g23 -
		g13*g13*g22 - g12*g12*g33 - g23*g23*g11

	denom := ctot + c1*c2*d12 + c1*c3*d13 + c2*c3*d23 + c1*c2*c3*d123
	eta := ctot + c1*c2*d12 + c1*c3*d13 + c2*c3*d23 -
		0.25*c1*c2*c3*(d12*d12+d13*d13+d23*d23-2.0*d13*d23-2.0*d12*d13-2.0*d12*d23)
	if err := checkDenominators(denominator{"denominator", denom}, denominator{"eta", eta}); err != nil {
		return TernaryProperties{}, fctErrorf(opTernaryCompute, err)
	}

	// Stage 3 (Execute)
	var p TernaryProperties
	p.X = [3]float64{c1 / ctot, c2 / ctot, c3 / ctot}

	p.ThermodynamicFactors[0] = -(-c2*c3*g22 - c2 + 2.0*c2*c3*g23 - c2*c3*g33 - c3 +
		(c2*g12-c2*g22-1.0+c2*g23-c2*g13)*c1) / eta
	p.ThermodynamicFactors[1] = -c1 * (c2*g12 + c3*g12 - c2*g13 - c3*g13 - c2*g22 +
		c2*g23 - c3*g23 + c3*g33) / eta
	p.ThermodynamicFactors[2] = c2 * (c1*g11 - c1*g12 - c3*g12 - c1*g13 + c3*g13 +
		c1*g23 + c3*g23 - c3*g33) / eta
	p.ThermodynamicFactors[3] = (c1*c3*g11 + c1 - 2.0*c1*c3*g13 + c1*c3*g33 + c3 +
		(c1*g11-c1*g12-c1*g13+1.0+c1*g23)*c2) / eta

	p.PartialMolarVolumes[0] = (1.0 + c2*(g22-g12) + c3*(g33-g13) +
		c2*c3*(-g13*g22+g13*g23-g23*g23+g22*g33+g12*g23-g12*g33)) / denom
	p.PartialMolarVolumes[1] = (1.0 + c1*(g11-g12) + c3*(g33-g23) +
		c1*c3*(-g12*g33+g12*g13-g13*g13+g13*g23+g11*g33-g11*g23)) / denom
	p.PartialMolarVolumes[2] = (1.0 + c1*(g11-g13) + c2*(g22-g23) +
		c1*c2*(-g13*g22+g12*g13-g12*g12+g12*g23+g11*g22-g11*g23)) / denom

	p.IsothermalCompressibility = (1.0 + c1*g11 + c2*g22 + c3*g33 +
		c1*c2*f12 + c1*c3*f13 + c2*c3*f23 + c1*c2*c3*f123) / denom

	p.B = mat.NewSymDense(3, []float64{
		c1 + c1*c1*g11, c1 * c2 * g12, c1 * c3 * g13,
		c1 * c2 * g12, c2 + c2*c2*g22, c2 * c3 * g23,
		c1 * c3 * g13, c2 * c3 * g23, c3 + c3*c3*g33,
	})
	p.Determinant = mat.Det(p.B)

	return p, nil
}

// PrintProperties writes a human-readable summary to w.
func (p TernaryProperties) PrintProperties(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("Thermodynamic factor:\n")
	for i, g := range p.ThermodynamicFactors {
		printf(" Thermodynamic factor %d: %v\n", i+1, g)
	}
	printf(" Partial molar volume:\n")
	for i, v := range p.PartialMolarVolumes {
		printf(" Component %d: %v\n", i+1, v)
	}
	printf(" Isothermal compressibility: %v\n", p.IsothermalCompressibility)
	printf(" B-matrix\n")
	if p.B != nil {
		printf("%.4g\n", mat.Formatted(p.B, mat.Prefix(" "), mat.Squeeze()))
	}
	printf(" Determinant: %f\n", p.Determinant)
	return err
}
