package config

// Template returns a commented starter configuration file.
func Template() []byte {
	return []byte(`# gomedit configuration
# See: https://github.com/yaklabco/gomedit

# Report output format: text or json
format: text

# Colorize output: auto, always, or never
color: auto

# Concurrent parse workers (0 = number of CPUs)
jobs: 0

# Treat skipped-keyword warnings as check failures
strict: false

# File extensions treated as mesh files
extensions:
  - .mesh

# Glob patterns to exclude from discovery
# exclude:
#   - "**/generated/**"
`)
}
