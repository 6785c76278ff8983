package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/kbi/fscorr"
	"github.com/katalvlaran/kbi/rdf"
	"github.com/katalvlaran/kbi/rdfio"
)

type inspectFlags struct {
	rColumn, gColumn int
	open             bool
	radius           float64
	lower, upper     float64
	particles        int
	box              float64
	sameSpecies      bool
	vdv              bool
	maxRadius        float64
	label            string
	jsonOut          string
}

func (a *app) newInspectCmd() *cobra.Command {
	var f inspectFlags
	cmd := &cobra.Command{
		Use:   "inspect table",
		Short: "Integrate one RDF table and print its state",
		Example: `  kbi inspect rdf_OO.xvg --upper 1.0 --lower 0.6
  kbi inspect rdf_OO.xvg --open --radius 1.2
  kbi inspect rdf_OO.xvg --upper 1.0 --vdv --particles 500 --box 3.2 --same-species --max-radius 1.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.rColumn, "r-column", 0, "0-based column holding r")
	fl.IntVar(&f.gColumn, "column", 1, "0-based column holding g(r)")
	fl.BoolVar(&f.open, "open", false, "treat the system as open (default closed)")
	fl.Float64Var(&f.radius, "radius", 0, "open readout radius (default: last point)")
	fl.Float64Var(&f.lower, "lower", 0, "closed readout lower bound in 1/R (default: last point)")
	fl.Float64Var(&f.upper, "upper", 0, "closed readout upper bound in 1/R")
	fl.IntVar(&f.particles, "particles", 0, "number of particles")
	fl.Float64Var(&f.box, "box", 0, "cubic box length")
	fl.BoolVar(&f.sameSpecies, "same-species", false, "the pair is X-X")
	fl.BoolVar(&f.vdv, "vdv", false, "apply the van der Vegt correction")
	fl.Float64Var(&f.maxRadius, "max-radius", 0, "truncate r before correction and integration")
	fl.StringVar(&f.label, "label", "", "name of the rdf (default: the table path)")
	fl.StringVar(&f.jsonOut, "json", "", "save the evaluated rdf as a JSON record")
	cmd.MarkFlagsMutuallyExclusive("radius", "lower")
	cmd.MarkFlagsMutuallyExclusive("radius", "upper")
	return cmd
}

func (a *app) inspect(cmd *cobra.Command, path string, f inspectFlags) error {
	log := a.logger.With(zap.String("table", path))

	t, err := rdfio.LoadTable(path)
	if err != nil {
		return err
	}
	r, err := t.Column(f.rColumn)
	if err != nil {
		return err
	}
	gr, err := t.Column(f.gColumn)
	if err != nil {
		return err
	}

	label := f.label
	if label == "" {
		label = path
	}
	opts := []rdf.Option{rdf.WithLabel(label), rdf.WithBoundary(rdf.Closed)}
	if f.open {
		opts[1] = rdf.WithBoundary(rdf.Open)
	}
	fl := cmd.Flags()
	if fl.Changed("particles") {
		opts = append(opts, rdf.WithParticles(f.particles))
	}
	if fl.Changed("box") {
		opts = append(opts, rdf.WithBoxLength(f.box))
	}
	if fl.Changed("same-species") {
		opts = append(opts, rdf.WithSameSpecies(f.sameSpecies))
	}

	x, err := rdf.New(r, gr, opts...)
	if err != nil {
		return err
	}
	if f.maxRadius > 0 {
		if x, err = x.Truncate(f.maxRadius); err != nil {
			return err
		}
	}
	if f.vdv {
		if x, err = fscorr.CorrectVanDerVegt(x); err != nil {
			return err
		}
	}

	if err := x.Integrate(); err != nil {
		return err
	}
	var ro []rdf.ReadoutOption
	if fl.Changed("radius") {
		ro = append(ro, rdf.AtRadius(f.radius))
	}
	if fl.Changed("lower") {
		ro = append(ro, rdf.WithLower(f.lower))
	}
	if fl.Changed("upper") {
		ro = append(ro, rdf.WithUpper(f.upper))
	}
	if err := x.FindValues(ro...); err != nil {
		return err
	}
	log.Debug("rdf evaluated", zap.Int("samples", x.Len()), zap.Stringer("boundary", x.Boundary()))

	if err := x.PrintState(cmd.OutOrStdout()); err != nil {
		return err
	}

	if f.jsonOut != "" {
		rec, err := rdfio.NewRecord(x, uuid.New())
		if err != nil {
			return err
		}
		written, err := rdfio.SaveJSON(f.jsonOut, rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", written)
	}
	return nil
}
