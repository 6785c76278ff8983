package fct

import (
	"fmt"
	"io"
)

const opBinaryCompute = "Binary.Compute"

// Binary holds the KBIs and number densities of a two-component mixture.
type Binary struct {
	G11, G22, G12 float64
	C1, C2        float64
}

// BinaryProperties are the fluctuation-theory results for a Binary.
type BinaryProperties struct {
	X1, X2 float64 // mole fractions

	ThermodynamicFactor float64
	PartialMolarVolume1 float64
	PartialMolarVolume2 float64

	DMu2DX2 float64 // (∂μ2/∂x2)/kT
	DMu1DC1 float64 // (∂μ1/∂c1)/kT
	DMu2DC2 float64 // (∂μ2/∂c2)/kT

	// IsothermalCompressibility is k·T·κ_T.
	IsothermalCompressibility float64
}

// Compute evaluates the two-component expressions:
//
//	D = G11 + G22 - 2·G12,  F = G11·G22 - G12²
//	η = c1 + c2 + c1·c2·D
//	Γ = 1 - x1·c2·D / (1 + c2·x1·D)
//	V1 = (1 + c2(G22-G12)) / η,  V2 = (1 + c1(G11-G12)) / η
//	kTκ = (1 + c1·G11 + c2·G22 + c1·c2·F) / η
func (b Binary) Compute() (BinaryProperties, error) {
	// Stage 1 (Validate)
	if err := checkConcentrations(b.C1, b.C2); err != nil {
		return BinaryProperties{}, fctErrorf(opBinaryCompute, err)
	}

	// Stage 2 (Prepare)
	ctot := b.C1 + b.C2
	x1, x2 := b.C1/ctot, b.C2/ctot
	d12 := b.G11 + b.G22 - 2.0*b.G12
	f12 := b.G11*b.G22 - b.G12*b.G12
	eta := ctot + b.C1*b.C2*d12

	gammaDen := 1.0 + b.C2*x1*d12
	dx2Den := x2 * (1.0 + x2*b.C1*d12)
	dc1Den := b.C1 * (1.0 + b.C1*(b.G11-b.G12))
	dc2Den := b.C2 * (1.0 + b.C2*(b.G22-b.G12))
	if err := checkDenominators(
		denominator{"eta", eta},
		denominator{"gamma", gammaDen},
		denominator{"dmu2/dx2", dx2Den},
		denominator{"dmu1/dc1", dc1Den},
		denominator{"dmu2/dc2", dc2Den},
	); err != nil {
		return BinaryProperties{}, fctErrorf(opBinaryCompute, err)
	}

	// Stage 3 (Execute)
	return BinaryProperties{
		X1:                        x1,
		X2:                        x2,
		ThermodynamicFactor:       1.0 - x1*b.C2*d12/gammaDen,
		PartialMolarVolume1:       ((b.G22-b.G12)*b.C2 + 1.0) / eta,
		PartialMolarVolume2:       ((b.G11-b.G12)*b.C1 + 1.0) / eta,
		DMu2DX2:                   1.0 / dx2Den,
		DMu1DC1:                   1.0 / dc1Den,
		DMu2DC2:                   1.0 / dc2Den,
		IsothermalCompressibility: (1.0 + b.C1*b.G11 + b.C2*b.G22 + b.C1*b.C2*f12) / eta,
	}, nil
}

// PrintProperties writes a human-readable summary to w.
func (p BinaryProperties) PrintProperties(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Thermodynamic factor: %v\n"+
			"Partial molar volume (Comp. 1): %v\n"+
			"Partial molar volume (Comp. 2): %v\n"+
			"Isothermal compressibility (kT·κT): %v\n"+
			"(dmu2/dx2)/kT: %v\n"+
			"(dmu1/dc1)/kT: %v\n"+
			"(dmu2/dc2)/kT: %v\n",
		p.ThermodynamicFactor, p.PartialMolarVolume1, p.PartialMolarVolume2,
		p.IsothermalCompressibility, p.DMu2DX2, p.DMu1DC1, p.DMu2DC2)
	return err
}
