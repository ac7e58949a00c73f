package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomedit/internal/logging"
	"github.com/yaklabco/gomedit/pkg/medit"
)

type convertFlags struct {
	stdout bool
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Rewrite a mesh file in canonical form",
		Long: `Read a mesh file and write it back in canonical form: normalized
whitespace, no comments, explicit reference labels, 1-based indices.

With the same input and output path (or output omitted), the file is
canonicalized in place; the write is atomic, so a failure never leaves
a truncated file behind.

Examples:
  gomedit convert rough.mesh clean.mesh
  gomedit convert cube.mesh              # Canonicalize in place
  gomedit convert cube.mesh --stdout     # Write to standard output`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "write the result to standard output")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	input := args[0]
	output := input
	if len(args) == 2 {
		output = args[1]
	}
	if flags.stdout && len(args) == 2 {
		return fmt.Errorf("--stdout cannot be combined with an output path")
	}

	m, err := medit.ReadFile(ctx, input, medit.WithLogger(logger))
	if err != nil {
		return err
	}

	if flags.stdout {
		if err := medit.Write(os.Stdout, m, medit.WithLogger(logger)); err != nil {
			return err
		}
	} else {
		if err := medit.WriteFile(ctx, output, m, medit.WithLogger(logger)); err != nil {
			return err
		}
		logger.Info("mesh written",
			logging.FieldInput, input,
			logging.FieldOutput, output,
			logging.FieldDimension, m.Dimension(),
			logging.FieldPointsTotal, m.NumPoints(),
			logging.FieldCellsTotal, m.NumCells(),
		)
	}

	return nil
}
