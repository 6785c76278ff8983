package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kbi/config"
	"github.com/katalvlaran/kbi/rdfio"
)

// Pipeline evaluates one job. It is safe to Run more than once; every run
// gets its own identifier and reloads the tables.
type Pipeline struct {
	job    config.Job
	logger *zap.Logger
}

// New validates job, applies the environment overrides in env and returns a
// ready pipeline. A nil logger disables logging.
func New(job *config.Job, env config.Env, logger *zap.Logger) (*Pipeline, error) {
	if job == nil {
		return nil, ErrNilJob
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	j := *job
	env.Apply(&j)
	if err := j.Validate(); err != nil {
		return nil, err
	}
	if j.Workers == 0 {
		j.Workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{job: j, logger: logger}, nil
}

// Job returns the effective job after environment overrides.
func (p *Pipeline) Job() config.Job { return p.job }

// Run evaluates every pair, the optional thermodynamics and the outputs.
// The first failing pair cancels the others and its error is returned.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	runID := uuid.New()
	log := p.logger.With(zap.String("run_id", runID.String()), zap.String("job", p.job.Name))
	log.Info("run started", zap.Int("pairs", len(p.job.Pairs)), zap.Int("workers", p.job.Workers))

	// Stage 1: every table once.
	tables, err := p.loadTables(ctx, log)
	if err != nil {
		return nil, err
	}

	// Stage 2: pairs in parallel, results kept in job order.
	results := make([]PairResult, len(p.job.Pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.job.Workers)
	for i, pair := range p.job.Pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := evaluate(pair, tables, log)
			if err != nil {
				return fmt.Errorf("pair %q: %w", pair.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("run failed", zap.Error(err))
		return nil, err
	}

	report := &Report{RunID: runID, Job: p.job.Name, Pairs: results}

	// Stage 3: thermodynamics.
	if p.job.Thermo != nil {
		if err := report.computeThermo(p.job.Thermo); err != nil {
			log.Error("thermo failed", zap.Error(err))
			return nil, err
		}
	}

	// Stage 4: outputs.
	if p.job.OutputDir != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files, err := writeOutputs(p.job.OutputDir, report)
		if err != nil {
			log.Error("writing outputs failed", zap.Error(err))
			return nil, err
		}
		report.Files = files
		log.Info("outputs written", zap.String("dir", p.job.OutputDir), zap.Int("files", len(files)))
	}

	log.Info("run finished", zap.Duration("elapsed", time.Since(start)))
	return report, nil
}

// loadTables reads every table referenced by the job exactly once.
func (p *Pipeline) loadTables(ctx context.Context, log *zap.Logger) (map[string]*rdfio.Table, error) {
	tables := make(map[string]*rdfio.Table)
	load := func(path string) error {
		if _, ok := tables[path]; ok {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := rdfio.LoadTable(path)
		if err != nil {
			return err
		}
		tables[path] = t
		log.Debug("table loaded", zap.String("path", path),
			zap.Int("rows", t.NumRows()), zap.Int("columns", t.NumColumns()))
		return nil
	}

	for _, pair := range p.job.Pairs {
		if err := load(pair.Table); err != nil {
			return nil, fmt.Errorf("pair %q: %w", pair.Name, err)
		}
		if pair.Partner != nil {
			if err := load(pair.Partner.Table); err != nil {
				return nil, fmt.Errorf("pair %q partner: %w", pair.Name, err)
			}
		}
	}
	return tables, nil
}
