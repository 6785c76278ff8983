package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kbi/config"
	"github.com/katalvlaran/kbi/pipeline"
)

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run job.yaml",
		Short: "Evaluate every pair of a job file",
		Long: `Loads the job file, applies KBI_WORKERS / KBI_OUTPUT_DIR overrides,
evaluates all pairs in parallel and prints a summary. With output_dir set, one
JSON record per pair and curves.xlsx are written there.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run,
	}
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	job, err := config.Load(args[0])
	if err != nil {
		return err
	}
	p, err := pipeline.New(job, a.env, a.logger)
	if err != nil {
		return err
	}
	report, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}
	return report.Print(cmd.OutOrStdout())
}
