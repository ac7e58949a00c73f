package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomedit/internal/logging"
	"github.com/yaklabco/gomedit/pkg/config"
)

// ErrCheckFailed is returned when mesh files fail to parse (or carry
// warnings in strict mode). It signals the exit code without being
// logged as an internal error.
var ErrCheckFailed = errors.New("mesh check failed")

type checkFlags struct {
	strict  bool
	exclude []string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate mesh files",
		Long: `Parse mesh files and fail when any of them is malformed.

Exit codes: 0 when all files parse, 1 when any file fails, 2 when
--strict is set and a file carries skipped-keyword warnings.

Examples:
  gomedit check                  # Check current directory
  gomedit check data/ --strict   # Also fail on skipped keywords`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat skipped-keyword warnings as failures")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	cfg.Strict = flags.strict
	cfg.Exclude = flags.exclude

	finalCfg, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	result, _, err := parsePaths(cmd.Context(), args, finalCfg)
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("invalid mesh",
				logging.FieldPath, file.Path,
				logging.FieldError, file.Error,
			)
		}
	}

	logger.Info("check complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldWarningsTotal, result.Stats.WarningsTotal,
	)

	if ExitCodeFromResult(result, finalCfg.Strict) != ExitSuccess {
		return ErrCheckFailed
	}
	return nil
}
