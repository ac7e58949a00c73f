package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomedit/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string     `json:"version"`
	Files   []JSONFile `json:"files"`
	Summary JSONStats  `json:"summary"`
}

// JSONFile represents a single file's result.
type JSONFile struct {
	Path      string      `json:"path"`
	Dimension int         `json:"dimension,omitempty"`
	Points    int         `json:"points,omitempty"`
	Cells     []JSONBlock `json:"cells,omitempty"`
	Skipped   []string    `json:"skipped,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// JSONBlock represents one cell family block.
type JSONBlock struct {
	Family string `json:"family"`
	Count  int    `json:"count"`
}

// JSONStats contains aggregate statistics.
type JSONStats struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesParsed     int `json:"filesParsed"`
	FilesErrored    int `json:"filesErrored"`
	PointsTotal     int `json:"pointsTotal"`
	CellsTotal      int `json:"cellsTotal"`
	WarningsTotal   int `json:"warningsTotal"`
}

// jsonSchemaVersion identifies the JSON output schema.
const jsonSchemaVersion = "1"

// JSONReporter formats results as machine-readable JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	out := JSONOutput{Version: jsonSchemaVersion}

	if result != nil {
		out.Files = make([]JSONFile, 0, len(result.Files))
		for _, file := range result.Files {
			out.Files = append(out.Files, toJSONFile(file))
		}
		out.Summary = JSONStats{
			FilesDiscovered: result.Stats.FilesDiscovered,
			FilesParsed:     result.Stats.FilesParsed,
			FilesErrored:    result.Stats.FilesErrored,
			PointsTotal:     result.Stats.PointsTotal,
			CellsTotal:      result.Stats.CellsTotal,
			WarningsTotal:   result.Stats.WarningsTotal,
		}
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	enc := json.NewEncoder(bw)
	if !r.opts.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func toJSONFile(file runner.FileOutcome) JSONFile {
	out := JSONFile{Path: file.Path, Skipped: file.Skipped}
	if file.Error != nil {
		out.Error = file.Error.Error()
		return out
	}
	if file.Mesh == nil {
		return out
	}
	out.Dimension = file.Mesh.Dimension()
	out.Points = file.Mesh.NumPoints()
	for _, block := range file.Mesh.Cells {
		out.Cells = append(out.Cells, JSONBlock{Family: block.Family, Count: len(block.Data)})
	}
	return out
}
