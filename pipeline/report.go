package pipeline

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/katalvlaran/kbi/config"
	"github.com/katalvlaran/kbi/fct"
)

// Report collects the results of one run.
type Report struct {
	RunID uuid.UUID
	Job   string

	// Pairs are in job order.
	Pairs []PairResult

	// At most one of Binary and Ternary is set, when the job has thermo.
	Binary  *fct.BinaryProperties
	Ternary *fct.TernaryProperties

	// Files lists the outputs written, if any.
	Files []string
}

// KBI returns the integral of the named pair.
func (r *Report) KBI(name string) (float64, error) {
	for _, p := range r.Pairs {
		if p.Name == name {
			return p.KBI, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownPair)
}

func (r *Report) computeThermo(t *config.Thermo) error {
	g := make(map[string]float64, len(t.Pairs))
	for _, key := range t.Keys() {
		v, err := r.KBI(t.Pairs[key])
		if err != nil {
			return fmt.Errorf("thermo G%s: %w", key, err)
		}
		g[key] = v
	}
	c := t.Concentrations

	if len(c) == 3 {
		props, err := fct.Ternary{
			G11: g["11"], G22: g["22"], G33: g["33"],
			G12: g["12"], G13: g["13"], G23: g["23"],
			C1: c[0], C2: c[1], C3: c[2],
		}.Compute()
		if err != nil {
			return err
		}
		r.Ternary = &props
		return nil
	}

	props, err := fct.Binary{G11: g["11"], G22: g["22"], G12: g["12"], C1: c[0], C2: c[1]}.Compute()
	if err != nil {
		return err
	}
	r.Binary = &props
	return nil
}

// Print writes a summary table of the pairs followed by the thermodynamic
// properties, if any.
func (r *Report) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Run %s (%s)\n", r.RunID, r.Job); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PAIR\tBOUNDARY\tCORRECTION\tSAMPLES\tKBI")
	for _, p := range r.Pairs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.6g\n", p.Name, p.Boundary(), p.Correction, p.RDF.Len(), p.KBI)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	switch {
	case r.Binary != nil:
		return r.Binary.PrintProperties(w)
	case r.Ternary != nil:
		return r.Ternary.PrintProperties(w)
	}
	return nil
}
