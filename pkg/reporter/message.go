package reporter

import (
	"fmt"

	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

// Messages printed by the text reporter.
const (
	MessageClean  = "No tag mismatches or unclosed tags detected."
	MessageIssues = "Found %d issues:"
)

// Message renders a diagnostic as a single human-readable line.
func Message(d tagcheck.Diagnostic) string {
	switch d.Kind {
	case tagcheck.KindUnexpectedClosing:
		return fmt.Sprintf("Line %d: unexpected closing tag </%s> (%s)", d.Line, d.Name, d.Raw)
	case tagcheck.KindMismatchedClosing:
		return fmt.Sprintf("Line %d: mismatched closing tag </%s> (expected </%s> opened at line %d)",
			d.Line, d.Name, d.ExpectedName, d.ExpectedLine)
	case tagcheck.KindMismatchedClosingNested:
		return fmt.Sprintf("Line %d: nested mismatched closing </%s> (top was <%s> opened at %d)",
			d.Line, d.Name, d.ExpectedName, d.ExpectedLine)
	case tagcheck.KindUnclosed:
		return fmt.Sprintf("Line %d: unclosed tag <%s>", d.Line, d.Name)
	default:
		return fmt.Sprintf("Line %d: %s <%s>", d.Line, d.Kind, d.Name)
	}
}
