package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/kbi/config"
	"github.com/katalvlaran/kbi/fscorr"
	"github.com/katalvlaran/kbi/rdf"
	"github.com/katalvlaran/kbi/rdfio"
)

// PairResult is the outcome of one pair.
type PairResult struct {
	Name       string
	Correction config.Correction
	KBI        float64
	Readout    rdf.Readout

	// RDF is the evaluated curve after truncation and correction.
	RDF *rdf.RDF
}

// Boundary reports the boundary the KBI was read out with.
func (r PairResult) Boundary() rdf.Boundary { return r.RDF.Boundary() }

// evaluate turns one configured pair into its KBI.
func evaluate(pair config.Pair, tables map[string]*rdfio.Table, log *zap.Logger) (PairResult, error) {
	log = log.With(zap.String("pair", pair.Name))

	// Stage 1 (Build): raw RDF, truncated when asked to.
	x, err := build(pair.Name, pair.Source, pair, tables)
	if err != nil {
		return PairResult{}, err
	}

	// Stage 2 (Correct)
	corr := pair.EffectiveCorrection()
	switch corr {
	case config.CorrectionVanDerVegt:
		if box, _ := x.Metadata().BoxLength(); pair.MaxRadius == 0 || pair.MaxRadius > box/2 {
			log.Warn("van der Vegt correction applied beyond half the box",
				zap.Float64("box_length", box), zap.Float64("max_radius", pair.MaxRadius))
		}
		if x, err = fscorr.CorrectVanDerVegt(x); err != nil {
			return PairResult{}, err
		}
	case config.CorrectionInverseN:
		partner, err := build(pair.Name+" partner", *pair.Partner, pair, tables)
		if err != nil {
			return PairResult{}, fmt.Errorf("partner: %w", err)
		}
		if x, err = fscorr.CorrectInverseN(x, partner); err != nil {
			return PairResult{}, err
		}
	}

	// Stage 3 (Integrate and read out)
	if err := x.Integrate(); err != nil {
		return PairResult{}, err
	}
	if err := x.FindValues(readoutOptions(pair.Readout)...); err != nil {
		return PairResult{}, err
	}
	kbi, _ := x.ReturnKBI()

	log.Debug("pair evaluated",
		zap.Stringer("boundary", x.Boundary()),
		zap.String("correction", string(corr)),
		zap.Int("samples", x.Len()),
		zap.Float64("kbi", kbi))

	return PairResult{Name: pair.Name, Correction: corr, KBI: kbi, Readout: x.Readout(), RDF: x}, nil
}

// build loads src from the table cache and wraps it with the pair's metadata.
// A partner carries its own particle count and box but shares the pair's
// boundary, pair type and truncation.
func build(label string, src config.Source, pair config.Pair, tables map[string]*rdfio.Table) (*rdf.RDF, error) {
	t, ok := tables[src.Table]
	if !ok {
		return nil, fmt.Errorf("table %s not loaded", src.Table)
	}
	r, err := t.Column(src.RColumn())
	if err != nil {
		return nil, err
	}
	gr, err := t.Column(src.GColumn())
	if err != nil {
		return nil, err
	}

	boundary, err := rdf.ParseBoundary(pair.EffectiveBoundary())
	if err != nil {
		return nil, err
	}
	opts := []rdf.Option{rdf.WithLabel(label), rdf.WithBoundary(boundary)}
	if src.Particles > 0 {
		opts = append(opts, rdf.WithParticles(src.Particles))
	}
	if src.BoxLength > 0 {
		opts = append(opts, rdf.WithBoxLength(src.BoxLength))
	}
	if pair.SameSpecies != nil {
		opts = append(opts, rdf.WithSameSpecies(*pair.SameSpecies))
	}

	x, err := rdf.New(r, gr, opts...)
	if err != nil {
		return nil, err
	}
	if pair.MaxRadius > 0 {
		return x.Truncate(pair.MaxRadius)
	}
	return x, nil
}

func readoutOptions(ro config.Readout) []rdf.ReadoutOption {
	var opts []rdf.ReadoutOption
	if ro.Radius != nil {
		opts = append(opts, rdf.AtRadius(*ro.Radius))
	}
	if ro.Lower != nil {
		opts = append(opts, rdf.WithLower(*ro.Lower))
	}
	if ro.Upper != nil {
		opts = append(opts, rdf.WithUpper(*ro.Upper))
	}
	return opts
}
