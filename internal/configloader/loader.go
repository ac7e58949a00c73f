// Package configloader provides configuration loading and resolution.
// It discovers a project-level .gomedit.yml, applies GOMEDIT_*
// environment overrides, and merges CLI flag values on top.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gomedit/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, if any.
	LoadedFrom string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOMEDIT_*)
//  3. Project config file (explicit path or discovered)
//  4. Built-in defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	result := &LoadResult{Config: config.Default()}

	path := opts.ExplicitPath
	if path == "" {
		workDir := opts.WorkingDir
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
			workDir = wd
		}
		discovered, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		fileCfg, err := config.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		Merge(result.Config, fileCfg)
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if opts.CLIConfig != nil {
		Merge(result.Config, opts.CLIConfig)
	}

	if err := result.Config.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}
