package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Format fields.
	FieldKeyword   = "keyword"
	FieldFamily    = "family"
	FieldDimension = "dimension"

	// Run fields.
	FieldJobs   = "jobs"
	FieldStrict = "strict"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesParsed     = "files_parsed"
	FieldFilesErrored    = "files_errored"
	FieldPointsTotal     = "points_total"
	FieldCellsTotal      = "cells_total"
	FieldWarningsTotal   = "warnings_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
