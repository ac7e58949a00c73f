// Package config defines core configuration types for gomedit.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import "fmt"

// OutputFormat specifies the output format for mesh reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gomedit.
type Config struct {
	// Format is the report output format ("text" or "json").
	Format OutputFormat `yaml:"format"`

	// Color controls colorized output: "auto", "always", or "never".
	Color string `yaml:"color"`

	// Jobs is the maximum number of concurrent parse workers.
	// 0 means auto (number of CPUs).
	Jobs int `yaml:"jobs"`

	// Strict makes check fail on skipped-keyword warnings, not just
	// on parse errors.
	Strict bool `yaml:"strict"`

	// Extensions is the set of file extensions treated as mesh files.
	Extensions []string `yaml:"extensions"`

	// Exclude is a list of glob patterns for paths to skip.
	Exclude []string `yaml:"exclude"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Format:     FormatText,
		Color:      "auto",
		Extensions: []string{".mesh"},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("invalid format %q: must be text or json", c.Format)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always, or never", c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d: must be non-negative", c.Jobs)
	}
	return nil
}
