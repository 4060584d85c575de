package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/tagcheck/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 issues (4 errors, 1 warning) in 2 of 7 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checkedWord := wordFiles
	if stats.FilesChecked == 1 {
		checkedWord = wordFile
	}

	var msg string
	if stats.DiagnosticsTotal == 0 {
		msg = s.Render(s.Success, "No issues found") +
			s.Render(s.Dim, fmt.Sprintf(" (%d %s checked)", stats.FilesChecked, checkedWord))
	} else {
		issueWord := "issues"
		if stats.DiagnosticsTotal == 1 {
			issueWord = "issue"
		}

		main := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, issueWord)
		if parts := s.severityParts(stats); len(parts) > 0 {
			main += " (" + strings.Join(parts, ", ") + ")"
		}

		msg = fmt.Sprintf("%s in %d of %d %s", main, stats.FilesWithIssues, stats.FilesChecked, checkedWord)
	}

	if stats.DiagnosticsSuppressed > 0 {
		msg += s.Render(s.Dim, fmt.Sprintf(", %d suppressed", stats.DiagnosticsSuppressed))
	}
	if stats.FilesErrored > 0 {
		erroredWord := wordFiles
		if stats.FilesErrored == 1 {
			erroredWord = wordFile
		}
		msg += ", " + s.Render(s.Failure, fmt.Sprintf("%d %s failed", stats.FilesErrored, erroredWord))
	}

	return msg + "\n"
}

func (s *Styles) severityParts(stats runner.Stats) []string {
	var parts []string
	if n := stats.DiagnosticsBySeverity["error"]; n > 0 {
		parts = append(parts, s.Render(s.Error, plural(n, "error", "errors")))
	}
	if n := stats.DiagnosticsBySeverity["warning"]; n > 0 {
		parts = append(parts, s.Render(s.Warning, plural(n, "warning", "warnings")))
	}
	if n := stats.DiagnosticsBySeverity["info"]; n > 0 {
		parts = append(parts, s.Render(s.Info, fmt.Sprintf("%d info", n)))
	}
	return parts
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.Render(s.Bold, "Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.Render(s.Bold, strconv.Itoa(stats.FilesChecked)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Render(s.Failure, strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Render(s.Failure, strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.Render(s.Bold, strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	if n := stats.DiagnosticsBySeverity["error"]; n > 0 {
		builder.WriteString("    Errors:          " + s.Render(s.Error, strconv.Itoa(n)) + "\n")
	}
	if n := stats.DiagnosticsBySeverity["warning"]; n > 0 {
		builder.WriteString("    Warnings:        " + s.Render(s.Warning, strconv.Itoa(n)) + "\n")
	}
	if n := stats.DiagnosticsBySeverity["info"]; n > 0 {
		builder.WriteString("    Info:            " + s.Render(s.Info, strconv.Itoa(n)) + "\n")
	}
	if stats.DiagnosticsSuppressed > 0 {
		builder.WriteString("  Suppressed:        " +
			s.Render(s.Dim, strconv.Itoa(stats.DiagnosticsSuppressed)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Render(s.Failure, "Check failed: some files could not be read"))
	case stats.DiagnosticsBySeverity["error"] > 0:
		builder.WriteString(s.Render(s.Failure, "Check failed with errors"))
	case stats.DiagnosticsBySeverity["warning"] > 0:
		builder.WriteString(s.Render(s.Warning, "Check completed with warnings"))
	default:
		builder.WriteString(s.Render(s.Success, "Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
