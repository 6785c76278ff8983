package rdf_test

import (
	"fmt"

	"github.com/katalvlaran/kbi/rdf"
)

// ExampleRDF_open integrates an uncorrelated open system and reads the last point.
func ExampleRDF_open() {
	r := []float64{0.5, 1.0, 1.5, 2.0, 2.5}
	gr := []float64{1, 1, 1, 1, 1}

	g, err := rdf.New(r, gr, rdf.WithBoundary(rdf.Open), rdf.WithLabel("ideal"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = g.Integrate(); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = g.FindValues(); err != nil {
		fmt.Println("error:", err)
		return
	}

	kbi, ok := g.ReturnKBI()
	ro := g.Readout().(rdf.OpenReadout)
	fmt.Printf("G=%.3f ok=%v R=%.1f index=%d\n", kbi, ok, ro.Radius, ro.Index)
	// Output:
	// G=0.000 ok=true R=2.5 index=3
}

// ExampleRDF_closed shows the 1/R extrapolation window of a closed system.
func ExampleRDF_closed() {
	r := []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0}
	gr := []float64{0, 1, 1, 1, 1, 1}

	g, _ := rdf.New(r, gr)
	_ = g.Integrate()

	// Without an upper bound the closed readout is refused.
	fmt.Println(g.FindValues())

	if err := g.FindValues(rdf.WithUpper(0.6)); err != nil {
		fmt.Println("error:", err)
		return
	}
	ro := g.Readout().(rdf.ClosedReadout)
	fmt.Println("window:", ro.IndexLimit)
	// Output:
	// FindValues: rdf: upper bound required for closed-system readout
	// window: [2 4]
}
