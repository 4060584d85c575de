// Package tagcheck scans markup text for tags and reports nesting defects:
// tags left open, stray closing tags, and closing tags that do not match the
// innermost open tag.
//
// The scan is lexical and permissive. Text that does not look like a tag is
// ignored, and every defect is returned as a Diagnostic rather than an error.
package tagcheck

import "strings"

// DoctypeName is the lowercased name of the document type declaration.
// It is tokenized like any other tag but never affects validation.
const DoctypeName = "!doctype"

// Token is a single tag occurrence found by Tokenize.
type Token struct {
	// Line is the 1-based line of the tag start in the preprocessed text.
	Line int

	// Closing is true for end tags such as </div>.
	Closing bool

	// Name is the tag name folded to lowercase.
	Name string

	// Raw is the full matched tag text, e.g. `<a href="/">`.
	Raw string

	// SelfClosing is true when the tag ends with "/>", ignoring whitespace.
	SelfClosing bool
}

// IsDoctype reports whether the token is a document type declaration.
func (t Token) IsDoctype() bool {
	return t.Name == DoctypeName
}

// voidTags never take a closing tag.
//
//nolint:gochecknoglobals // Read-only lookup table.
var voidTags = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// IsVoid reports whether name is a void element. The check is case-insensitive.
func IsVoid(name string) bool {
	_, ok := voidTags[strings.ToLower(name)]
	return ok
}
