package tagcheck

import "fmt"

// Kind classifies a nesting defect.
type Kind string

// Diagnostic kinds produced by Validate.
const (
	// KindUnexpectedClosing is a closing tag seen while no tag is open.
	KindUnexpectedClosing Kind = "unexpected-closing"

	// KindMismatchedClosing is a closing tag whose name matches no open tag.
	KindMismatchedClosing Kind = "mismatched-closing"

	// KindMismatchedClosingNested is a closing tag that matches an open tag
	// below the innermost one. The tags opened after the match are dropped.
	KindMismatchedClosingNested Kind = "mismatched-closing-nested"

	// KindUnclosed is a tag still open at the end of the document.
	KindUnclosed Kind = "unclosed"
)

// Kinds returns every diagnostic kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindUnexpectedClosing,
		KindMismatchedClosing,
		KindMismatchedClosingNested,
		KindUnclosed,
	}
}

// ParseKind converts s into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown diagnostic kind %q", s)
}

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}

// Description returns a one-line explanation of the kind.
func (k Kind) Description() string {
	switch k {
	case KindUnexpectedClosing:
		return "closing tag with no open tag"
	case KindMismatchedClosing:
		return "closing tag that matches no open tag"
	case KindMismatchedClosingNested:
		return "closing tag that skips over inner open tags"
	case KindUnclosed:
		return "tag left open at end of document"
	default:
		return ""
	}
}

// Diagnostic is one reported nesting defect.
//
// Which fields are set depends on Kind: Raw is empty for KindUnclosed, and
// ExpectedName/ExpectedLine are only set for the two mismatch kinds.
type Diagnostic struct {
	Kind Kind

	// Line is the 1-based line of the offending tag. For KindUnclosed it is
	// the line where the tag was opened.
	Line int

	// Name is the lowercased tag name.
	Name string

	// Raw is the matched tag text of a closing tag.
	Raw string

	// ExpectedName is the innermost open tag when the mismatch was found.
	ExpectedName string

	// ExpectedLine is the line where ExpectedName was opened.
	ExpectedLine int
}
