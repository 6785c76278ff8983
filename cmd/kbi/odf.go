package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/kbi/odf"
	"github.com/katalvlaran/kbi/rdfio"
)

type odfFlags struct {
	chi, sigma float64
	rmin, rmax float64
	n          int
	out        string
}

func (a *app) newODFCmd() *cobra.Command {
	var f odfFlags
	cmd := &cobra.Command{
		Use:   "odf",
		Short: "Write the oscillatory decaying function as an RDF table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeODF(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&f.chi, "chi", 2.0, "decay length of the oscillations")
	fl.Float64Var(&f.sigma, "sigma", 1.0, "particle diameter")
	fl.Float64Var(&f.rmin, "rmin", 0.001, "first radius")
	fl.Float64Var(&f.rmax, "rmax", 250, "last radius")
	fl.IntVar(&f.n, "n", 10000, "number of samples")
	fl.StringVar(&f.out, "out", "", "output file (default stdout)")
	return cmd
}

func (a *app) writeODF(cmd *cobra.Command, f odfFlags) error {
	if f.n < 2 || !(f.rmax > f.rmin) || f.rmin < 0 {
		return fmt.Errorf("need n >= 2 and 0 <= rmin < rmax, got n=%d rmin=%v rmax=%v", f.n, f.rmin, f.rmax)
	}
	r := odf.Linspace(f.rmin, f.rmax, f.n)
	g, err := odf.Generate(r, f.chi, f.sigma)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("oscillatory decaying function chi=%v sigma=%v", f.chi, f.sigma)
	if f.out == "" {
		return rdfio.WriteTable(cmd.OutOrStdout(), header, r, g)
	}

	file, err := os.Create(f.out)
	if err != nil {
		return err
	}
	if err := rdfio.WriteTable(file, header, r, g); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	a.logger.Debug("odf written", zap.Int("samples", f.n), zap.String("out", f.out))
	return nil
}
