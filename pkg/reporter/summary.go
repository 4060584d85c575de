package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/tagcheck/internal/ui/pretty"
	"github.com/yaklabco/tagcheck/pkg/runner"
	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth        = 90
	kindColWidth      = 30
	fileColWidth      = 60
	numColWidth       = 7
	warnColWidth      = 8
	maxFilePathLength = 58
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// tally counts findings by severity.
type tally struct {
	label    string
	issues   int
	errors   int
	warnings int
}

func (t *tally) add(f runner.Finding) {
	t.issues++
	switch f.Severity {
	case "error":
		t.errors++
	case "warning":
		t.warnings++
	}
}

// SummaryReporter formats results as aggregated tables by kind and by file.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || result.Stats.DiagnosticsTotal == 0 {
		fmt.Fprintln(r.bw, r.styles.Render(r.styles.Success, "No issues found"))
		return 0, nil
	}

	kinds, files := r.aggregate(result)

	r.renderKindTable(kinds)
	fmt.Fprintln(r.bw)
	r.renderFileTable(files)
	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return result.Stats.DiagnosticsTotal, nil
}

// aggregate builds per-kind rows in kind order and per-file rows sorted by
// descending issue count.
func (r *SummaryReporter) aggregate(result *runner.Result) ([]tally, []tally) {
	byKind := make(map[tagcheck.Kind]*tally)
	var files []tally

	for _, file := range result.Files {
		if file.Result == nil || len(file.Result.Findings) == 0 {
			continue
		}
		ft := tally{label: r.opts.displayPath(file.Path)}
		for _, finding := range file.Result.Findings {
			ft.add(finding)
			kt, ok := byKind[finding.Kind]
			if !ok {
				kt = &tally{label: finding.Kind.String()}
				byKind[finding.Kind] = kt
			}
			kt.add(finding)
		}
		files = append(files, ft)
	}

	kinds := make([]tally, 0, len(byKind))
	for _, kind := range tagcheck.Kinds() {
		if kt, ok := byKind[kind]; ok {
			kinds = append(kinds, *kt)
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].issues > files[j].issues
	})

	return kinds, files
}

func (r *SummaryReporter) renderKindTable(kinds []tally) {
	fmt.Fprintln(r.bw, r.styles.Render(r.styles.Bold, "Kinds Summary"))
	fmt.Fprintln(r.bw, r.styles.Render(r.styles.TableRule, strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.Render(r.styles.TableHeader, padRight("Kind", kindColWidth)),
		r.styles.Render(r.styles.TableHeader, padLeft("Count", numColWidth)),
		r.styles.Render(r.styles.TableHeader, padLeft("Errors", numColWidth)),
		r.styles.Render(r.styles.TableHeader, padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.bw, r.styles.Render(r.styles.TableRule, strings.Repeat("─", tableWidth)))

	for _, kind := range kinds {
		r.renderRow(kind, kindColWidth)
	}
}

func (r *SummaryReporter) renderFileTable(files []tally) {
	fmt.Fprintln(r.bw, r.styles.Render(r.styles.Bold, "Files Summary"))
	fmt.Fprintln(r.bw, r.styles.Render(r.styles.TableRule, strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.Render(r.styles.TableHeader, padRight("File", fileColWidth)),
		r.styles.Render(r.styles.TableHeader, padLeft("Count", numColWidth)),
		r.styles.Render(r.styles.TableHeader, padLeft("Errors", numColWidth)),
		r.styles.Render(r.styles.TableHeader, padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.bw, r.styles.Render(r.styles.TableRule, strings.Repeat("─", tableWidth)))

	for _, file := range files {
		if len(file.label) > maxFilePathLength {
			file.label = "…" + file.label[len(file.label)-(maxFilePathLength-1):]
		}
		r.renderRow(file, fileColWidth)
	}
}

func (r *SummaryReporter) renderRow(row tally, labelWidth int) {
	padded := padRight(row.label, labelWidth)
	var styled string
	switch {
	case row.errors > 0:
		styled = r.styles.Render(r.styles.Error, padded)
	case row.warnings > 0:
		styled = r.styles.Render(r.styles.Warning, padded)
	default:
		styled = r.styles.Render(r.styles.Info, padded)
	}

	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		styled,
		padLeft(strconv.Itoa(row.issues), numColWidth),
		padLeft(strconv.Itoa(row.errors), numColWidth),
		padLeft(strconv.Itoa(row.warnings), warnColWidth),
	)
}
