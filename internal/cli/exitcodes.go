package cli

import "github.com/yaklabco/gomedit/pkg/runner"

// Exit codes for gomedit.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates check completed but some files failed to parse.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates check completed with skipped-keyword
	// warnings (when strict mode).
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitCheckErrors
	}

	if strict && result.HasWarnings() {
		return ExitCheckWarnings
	}

	return ExitSuccess
}
