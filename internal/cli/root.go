// Package cli provides the Cobra command structure for gomedit.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomedit/internal/configloader"
	"github.com/yaklabco/gomedit/internal/logging"
	"github.com/yaklabco/gomedit/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomedit",
		Short: "A toolkit for Medit mesh files",
		Long: `gomedit reads, checks, and rewrites meshes in Medit's ASCII format.

It parses keyword/count/data blocks (vertices, element connectivity,
integer reference labels), reports mesh contents, validates files for
CI, and rewrites meshes in canonical form.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newInfoCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadConfig resolves the effective configuration for a command,
// merging the CLI-provided values on top of file and environment
// sources.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	if loadResult.LoadedFrom != "" {
		logging.Default().Debug("configuration loaded",
			logging.FieldPath, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// colorMode returns the effective color mode: the --color flag when
// set, otherwise the configured one.
func colorMode(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("color") {
		if v, err := cmd.Flags().GetString("color"); err == nil {
			return v
		}
	}
	if cfg != nil && cfg.Color != "" {
		return cfg.Color
	}
	return "auto"
}
