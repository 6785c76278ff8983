package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/kbi/config"
)

// app holds the state shared by the subcommands.
type app struct {
	verbose bool
	env     config.Env
	logger  *zap.Logger
}

// newRootCmd assembles the command tree. A non-nil logger replaces the one
// built from the flags and environment.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "kbi",
		Short: "Kirkwood-Buff integrals from radial distribution functions",
		Long: `kbi integrates radial distribution functions g(r) into running
Kirkwood-Buff integrals G(R) and reads out the KBI, either directly (open
systems) or by extrapolating G against 1/R (closed systems). Finite-size
corrections and fluctuation-theory properties are available through job files.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newRunCmd(), a.newInspectCmd(), a.newODFCmd())
	return root
}

// setup reads the environment and builds the logger.
func (a *app) setup(*cobra.Command, []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	a.env = env
	if a.logger != nil {
		return nil
	}

	cfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(env.LogLevel)
	if err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", config.EnvPrefix, err)
	}
	cfg.Level = level
	if a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if a.logger, err = cfg.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
