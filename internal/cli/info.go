package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomedit/pkg/config"
	"github.com/yaklabco/gomedit/pkg/reporter"
	"github.com/yaklabco/gomedit/pkg/runner"
)

type infoFlags struct {
	format    string
	exclude   []string
	compact   bool
	noSummary bool
}

func newInfoCommand() *cobra.Command {
	var cfg config.Config
	flags := &infoFlags{}

	cmd := &cobra.Command{
		Use:   "info [paths...]",
		Short: "Summarize mesh files",
		Long: `Parse mesh files and print their contents: dimension, point count,
and cell counts per element family.

By default, summarizes all .mesh files in the current directory and
subdirectories. Specify paths to inspect specific files or directories.

Examples:
  gomedit info                   # Summarize current directory
  gomedit info data/             # Summarize data directory
  gomedit info cube.mesh         # Summarize single file
  gomedit info --format json     # Output as JSON for tooling`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")

	return cmd
}

func runInfo(cmd *cobra.Command, args []string, cfg *config.Config, flags *infoFlags) error {
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Exclude = flags.exclude

	finalCfg, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	result, workDir, err := parsePaths(cmd.Context(), args, finalCfg)
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      os.Stdout,
		Format:      reporter.Format(finalCfg.Format),
		Color:       colorMode(cmd, finalCfg),
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return err
	}

	if err := rep.Report(cmd.Context(), result); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if result.HasFailures() {
		return ErrCheckFailed
	}
	return nil
}

// parsePaths runs the multi-file parser over the given paths with the
// resolved configuration.
func parsePaths(ctx context.Context, paths []string, cfg *config.Config) (*runner.Result, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	result, err := runner.New().Run(ctx, runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Exclude,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return nil, "", err
	}
	return result, workDir, nil
}
