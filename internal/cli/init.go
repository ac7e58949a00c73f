package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomedit/internal/logging"
	"github.com/yaklabco/gomedit/pkg/config"
	"github.com/yaklabco/gomedit/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gomedit configuration file",
		Long: `Create a new .gomedit.yml configuration file in the current directory
with sensible defaults. The file can be customized to change the output
format, worker count, and file discovery behavior.

Examples:
  gomedit init                    Create .gomedit.yml
  gomedit init --output conf.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gomedit.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gomedit.yml"
	}

	if !flags.force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
		}
	}

	if err := fsutil.WriteAtomic(ctx, outputPath, config.Template(), configFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info("configuration created", logging.FieldPath, outputPath)
	return nil
}
