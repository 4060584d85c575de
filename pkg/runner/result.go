package runner

// FileOutcome is what happened to one discovered path. Exactly one of
// Result and Error is set.
type FileOutcome struct {
	Path   string
	Result *FileResult
	Error  error
}

// Findings returns the reported findings, or nil when the file failed.
func (o FileOutcome) Findings() []Finding {
	if o.Result == nil {
		return nil
	}
	return o.Result.Findings
}

// Stats aggregates a run. Suppressed findings are counted only in
// DiagnosticsSuppressed.
type Stats struct {
	FilesDiscovered int
	FilesChecked    int
	FilesErrored    int
	FilesWithIssues int

	DiagnosticsTotal      int
	DiagnosticsSuppressed int
	DiagnosticsByKind     map[string]int
	DiagnosticsBySeverity map[string]int
}

// Result holds every file outcome of a run in path order, plus totals.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// NewResult returns an empty Result ready for Add.
func NewResult() *Result {
	return &Result{Stats: Stats{
		DiagnosticsByKind:     make(map[string]int),
		DiagnosticsBySeverity: make(map[string]int),
	}}
}

// Add appends outcome and updates the totals.
func (r *Result) Add(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.FilesDiscovered++

	if outcome.Error != nil || outcome.Result == nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesChecked++
	r.Stats.DiagnosticsSuppressed += outcome.Result.Suppressed

	findings := outcome.Result.Findings
	if len(findings) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.DiagnosticsTotal += len(findings)
	for _, f := range findings {
		r.Stats.DiagnosticsByKind[string(f.Kind)]++
		r.Stats.DiagnosticsBySeverity[string(f.Severity)]++
	}
}

// HasIssues reports whether any findings were reported.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file could not be checked.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// FirstError returns the first file error in path order, or nil.
func (r *Result) FirstError() error {
	if r == nil {
		return nil
	}
	for _, f := range r.Files {
		if f.Error != nil {
			return f.Error
		}
	}
	return nil
}
