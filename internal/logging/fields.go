package logging

// Structured log keys.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"

	// Effective configuration.
	FieldConfigFiles = "config_files"
	FieldEncoding    = "encoding"
	FieldMarkdown    = "markdown"
	FieldJobs        = "jobs"
	FieldFormat      = "format"

	// Per file.
	FieldKind  = "kind"
	FieldBytes = "bytes"
	FieldTags  = "tags"

	// Run totals.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesChecked     = "files_checked"
	FieldFilesWithIssues  = "files_with_issues"
	FieldFilesErrored     = "files_errored"
	FieldDiagnosticsTotal = "diagnostics_total"

	// kinds command.
	FieldSeverity    = "severity"
	FieldDescription = "description"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
