package source

import (
	"fmt"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the document type of a file.
type Kind string

const (
	// KindMarkup is HTML, XHTML, XML, SVG, templates and similar tag-based text.
	KindMarkup Kind = "markup"

	// KindMarkdown is Markdown; only its embedded HTML is validated.
	KindMarkdown Kind = "markdown"
)

// MarkdownMode controls how Markdown files are treated.
type MarkdownMode string

const (
	// MarkdownAuto detects Markdown files by name and content.
	MarkdownAuto MarkdownMode = "auto"

	// MarkdownAlways treats every file as Markdown.
	MarkdownAlways MarkdownMode = "always"

	// MarkdownNever treats every file as markup.
	MarkdownNever MarkdownMode = "never"
)

// ParseMarkdownMode converts s into a MarkdownMode. Empty means auto.
func ParseMarkdownMode(s string) (MarkdownMode, error) {
	switch MarkdownMode(s) {
	case "", MarkdownAuto:
		return MarkdownAuto, nil
	case MarkdownAlways, MarkdownNever:
		return MarkdownMode(s), nil
	default:
		return "", fmt.Errorf("invalid markdown mode %q; valid modes: auto, always, never", s)
	}
}

// markdownLanguages are the linguist languages handled as Markdown.
//
//nolint:gochecknoglobals // Read-only lookup table.
var markdownLanguages = map[string]struct{}{
	"Markdown":  {},
	"RMarkdown": {},
	"MDX":       {},
}

// DetectKind classifies a file from its name, falling back to its content
// when the extension alone is ambiguous.
func DetectKind(path string, content []byte, mode MarkdownMode) Kind {
	switch mode {
	case MarkdownAlways:
		return KindMarkdown
	case MarkdownNever:
		return KindMarkup
	}

	name := filepath.Base(path)

	lang, safe := enry.GetLanguageByExtension(name)
	if !safe || lang == "" {
		lang = enry.GetLanguage(name, content)
	}

	if _, ok := markdownLanguages[lang]; ok {
		return KindMarkdown
	}
	return KindMarkup
}
