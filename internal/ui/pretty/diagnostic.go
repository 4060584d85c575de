package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/tagcheck/pkg/config"
)

// FormatDiagnosticLine formats one already rendered diagnostic message.
// With color disabled the message is returned as is.
func (s *Styles) FormatDiagnosticLine(message string, sev config.Severity) string {
	if !s.colorEnabled {
		return message
	}

	// "Line N:" is dimmed; the rest takes the severity color.
	prefix, rest, found := strings.Cut(message, ": ")
	if !found {
		return s.severityStyle(sev).Render(message)
	}
	return s.Location.Render(prefix+":") + " " + s.severityStyle(sev).Render(rest)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError, config.SeverityWarning, config.SeverityInfo:
		return s.Render(s.severityStyle(sev), string(sev))
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.Render(s.FilePath, path)
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Render(s.Dim, fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}

// FormatFileError formats a file that could not be checked.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s",
		s.Render(s.FilePath, path),
		s.Render(s.Error, fmt.Sprintf("error: %v", err)),
	)
}

func (s *Styles) severityStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityWarning:
		return s.Warning
	case config.SeverityInfo:
		return s.Info
	default:
		return s.Error
	}
}
