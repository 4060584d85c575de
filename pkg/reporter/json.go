package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/tagcheck/pkg/runner"
)

// jsonSchemaVersion identifies the layout of JSONOutput.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version     string           `json:"version"`
	ToolVersion string           `json:"toolVersion"`
	Files       []JSONFileResult `json:"files"`
	Summary     JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Kind        string           `json:"kind,omitempty"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Suppressed  int              `json:"suppressed,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Kind         string `json:"kind"`
	Severity     string `json:"severity"`
	Message      string `json:"message"`
	Line         int    `json:"line"`
	Name         string `json:"name"`
	Raw          string `json:"raw,omitempty"`
	ExpectedName string `json:"expectedName,omitempty"`
	ExpectedLine int    `json:"expectedLine,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	Suppressed      int            `json:"suppressed"`
	ByKind          map[string]int `json:"byKind"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as one JSON document.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)
	if err := writeJSON(r.opts.Writer, output, r.opts.Compact); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	files := resultFiles(result)

	output := &JSONOutput{
		Version:     jsonSchemaVersion,
		ToolVersion: r.opts.ToolVersion,
		Files:       make([]JSONFileResult, 0, len(files)),
		Summary: JSONSummary{
			ByKind:     map[string]int{},
			BySeverity: map[string]int{},
		},
	}
	if result != nil {
		stats := result.Stats
		output.Summary = JSONSummary{
			FilesChecked:    stats.FilesChecked,
			FilesWithIssues: stats.FilesWithIssues,
			FilesErrored:    stats.FilesErrored,
			TotalIssues:     stats.DiagnosticsTotal,
			Suppressed:      stats.DiagnosticsSuppressed,
			ByKind:          nonNil(stats.DiagnosticsByKind),
			BySeverity:      nonNil(stats.DiagnosticsBySeverity),
		}
	}

	for _, file := range files {
		entry := JSONFileResult{
			Path:        r.opts.displayPath(file.Path),
			Diagnostics: make([]JSONDiagnostic, 0, len(file.Findings())),
		}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		if file.Result != nil {
			entry.Kind = string(file.Result.Kind)
			entry.Suppressed = file.Result.Suppressed
		}
		for _, f := range file.Findings() {
			entry.Diagnostics = append(entry.Diagnostics, JSONDiagnostic{
				Kind:         string(f.Kind),
				Severity:     string(f.Severity),
				Message:      Message(f.Diagnostic),
				Line:         f.Line,
				Name:         f.Name,
				Raw:          f.Raw,
				ExpectedName: f.ExpectedName,
				ExpectedLine: f.ExpectedLine,
			})
		}
		output.Files = append(output.Files, entry)
	}

	return output
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
