package runner

import "github.com/yaklabco/gomedit/pkg/mesh"

// FileOutcome holds the parse result for a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Mesh is the parsed snapshot. Nil when Error is set.
	Mesh *mesh.Mesh

	// Skipped lists the keywords the parser ignored in this file.
	Skipped []string

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of files successfully parsed.
	FilesParsed int

	// FilesErrored is the number of files that failed to read or parse.
	FilesErrored int

	// FilesWithWarnings is the number of files with skipped keywords.
	FilesWithWarnings int

	// PointsTotal is the total point count across all parsed files.
	PointsTotal int

	// CellsTotal is the total cell count across all parsed files.
	CellsTotal int

	// WarningsTotal is the total number of skipped keywords.
	WarningsTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file,
	// ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to parse.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasWarnings reports whether any file produced skipped-keyword warnings.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return r.Stats.WarningsTotal > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesParsed++
	if len(outcome.Skipped) > 0 {
		r.Stats.FilesWithWarnings++
		r.Stats.WarningsTotal += len(outcome.Skipped)
	}
	if outcome.Mesh != nil {
		r.Stats.PointsTotal += outcome.Mesh.NumPoints()
		r.Stats.CellsTotal += outcome.Mesh.NumCells()
	}
}
