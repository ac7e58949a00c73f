package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomedit/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files parsed (1204 points, 2310 cells), 1 failed, 2 warnings".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesParsed == 1 {
		fileWord = wordFile
	}

	var parts []string

	parsed := fmt.Sprintf("%d %s parsed", stats.FilesParsed, fileWord)
	if stats.FilesParsed > 0 {
		parsed += s.Dim.Render(fmt.Sprintf(" (%d points, %d cells)",
			stats.PointsTotal, stats.CellsTotal))
	}
	parts = append(parts, s.Success.Render(parsed))

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	if stats.WarningsTotal > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d warnings", stats.WarningsTotal)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatFileHeader formats a file path header for per-file output.
func (s *Styles) FormatFileHeader(path string) string {
	return s.FilePath.Render(path)
}
