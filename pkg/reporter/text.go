package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/tagcheck/internal/ui/pretty"
	"github.com/yaklabco/tagcheck/pkg/runner"
)

// TextReporter formats results as terminal output.
//
// A run over a single file prints the issue count followed by one line per
// diagnostic, and a file that could not be read is left to the caller, which
// logs it. Runs over several files group the lines under a header per file
// and list unreadable files in path order among them.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Render(r.styles.Dim, "No files to check."))
		return 0, nil
	}

	total := result.Stats.DiagnosticsTotal
	switch {
	case total > 0:
		fmt.Fprintln(r.bw, r.styles.Render(r.styles.Failure, fmt.Sprintf(MessageIssues, total)))
	case result.Stats.FilesChecked > 0:
		fmt.Fprintln(r.bw, r.styles.Render(r.styles.Success, MessageClean))
	}

	if len(result.Files) == 1 {
		r.writeFindings(result.Files[0], "")
		return total, nil
	}

	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			fmt.Fprintln(r.bw, r.styles.FormatFileError(r.opts.displayPath(file.Path), file.Error))
		case len(file.Findings()) > 0:
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.opts.displayPath(file.Path), len(file.Findings())))
			r.writeFindings(file, "  ")
		}
	}

	r.writeSummary(result)

	return total, nil
}

func (r *TextReporter) writeFindings(file runner.FileOutcome, indent string) {
	for _, finding := range file.Findings() {
		fmt.Fprintln(r.bw, indent+r.styles.FormatDiagnosticLine(Message(finding.Diagnostic), finding.Severity))
	}
}

// writeSummary prints the one-line summary for multi-file runs.
func (r *TextReporter) writeSummary(result *runner.Result) {
	if !r.opts.ShowSummary || len(result.Files) < 2 {
		return
	}
	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
}
