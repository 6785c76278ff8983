// SPDX-License-Identifier: MIT

package rdf

import (
	"fmt"
	"io"
	"strings"
)

// State is a read-only snapshot of an RDF's configuration and progress.
type State struct {
	Label      string
	Boundary   Boundary
	Samples    int
	Metadata   Metadata
	Integrated bool
	Readout    Readout // nil when absent
}

// State returns the current snapshot.
func (x *RDF) State() State {
	return State{
		Label:      x.label,
		Boundary:   x.boundary,
		Samples:    len(x.r),
		Metadata:   x.meta,
		Integrated: x.kbi != nil,
		Readout:    x.readout,
	}
}

// PrintState writes a human-readable summary of the RDF to w.
func (x *RDF) PrintState(w io.Writer) error {
	_, err := io.WriteString(w, x.State().String())
	return err
}

// String renders the snapshot, one fact per line.
func (s State) String() string {
	var b strings.Builder

	label := s.Label
	if label == "" {
		label = "None"
	}
	fmt.Fprintf(&b, "RDF-system with name: %s\n", label)
	fmt.Fprintf(&b, "g(r) and r of length %d\n", s.Samples)

	switch same, ok := s.Metadata.SameSpecies(); {
	case !ok:
		b.WriteString("No information if rdf is between equal or non-equal particles.\n")
	case same:
		b.WriteString("This rdf is between particles of the same type\n")
	default:
		b.WriteString("This rdf is between particles of different type\n")
	}

	if n, ok := s.Metadata.Particles(); ok {
		fmt.Fprintf(&b, "Number of particles: %d\n", n)
	} else {
		b.WriteString("No particle count present.\n")
	}
	if l, ok := s.Metadata.BoxLength(); ok {
		v, _ := s.Metadata.Volume()
		fmt.Fprintf(&b, "Box length: %v (volume %v)\n", l, v)
	} else {
		b.WriteString("No box-size information present.\n")
	}

	fmt.Fprintf(&b, "Integration method: %s\n", s.Boundary)
	if !s.Integrated {
		b.WriteString("This rdf has not been integrated yet.\n")
	}

	switch ro := s.Readout.(type) {
	case nil:
		b.WriteString("Kirkwood-Buff integral: not computed\n")
	case OpenReadout:
		fmt.Fprintf(&b, "Kirkwood-Buff integral: %v\n", ro.Value)
		fmt.Fprintf(&b, "Radial value at readout: %v\n", ro.Radius)
		fmt.Fprintf(&b, "Index: %d\n", ro.Index)
	case ClosedReadout:
		fmt.Fprintf(&b, "Kirkwood-Buff integral: %v\n", ro.Value)
		fmt.Fprintf(&b, "Line has slope: %v\n", ro.Slope)
		fmt.Fprintf(&b, "R-squared value: %v\n", ro.RValue*ro.RValue)
		fmt.Fprintf(&b, "p-value: %v\n", ro.PValue)
		fmt.Fprintf(&b, "Std. error of slope: %v\n", ro.StdError)
		fmt.Fprintf(&b, "Integral was extrapolated between %v and %v\n", ro.ValueLimit[0], ro.ValueLimit[1])
		fmt.Fprintf(&b, "Indexes for extrapolation %d and %d\n", ro.IndexLimit[0], ro.IndexLimit[1])
	}

	return b.String()
}
