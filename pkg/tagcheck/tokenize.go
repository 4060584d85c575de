package tagcheck

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	commentRe     = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRe         = regexp.MustCompile(`<(/?)([A-Za-z0-9:-]+)([^>]*)>`)
)

// Preprocess returns text with raw-text block bodies and comments removed.
//
// Script and style blocks collapse to an empty element so the opening and
// closing tags still pair up. A block ends at the first closing tag with the
// same name. Comments are removed entirely, each one ending at the first "-->".
// Line numbers reported by Tokenize refer to the returned text.
func Preprocess(text string) string {
	text = scriptBlockRe.ReplaceAllLiteralString(text, "<script></script>")
	text = styleBlockRe.ReplaceAllLiteralString(text, "<style></style>")
	return commentRe.ReplaceAllLiteralString(text, "")
}

// Tokenize preprocesses text and returns its tags in document order.
// Tag-like text that does not match the tag pattern is skipped.
func Tokenize(text string) []Token {
	clean := Preprocess(text)

	matches := tagRe.FindAllStringSubmatchIndex(clean, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))

	// Newlines are counted incrementally; matches never overlap.
	line := 1
	scanned := 0

	for _, m := range matches {
		start := m[0]
		line += strings.Count(clean[scanned:start], "\n")
		scanned = start

		rest := clean[m[6]:m[7]]
		tokens = append(tokens, Token{
			Line:        line,
			Closing:     m[3] > m[2],
			Name:        strings.ToLower(clean[m[4]:m[5]]),
			Raw:         clean[m[0]:m[1]],
			SelfClosing: strings.HasSuffix(strings.TrimSpace(rest), "/"),
		})
	}

	return tokens
}
