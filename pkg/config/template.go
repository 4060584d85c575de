package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every diagnostic kind with its defaults.
	// If false, generates a minimal template.
	Full bool
}

// GenerateTemplate creates a commented YAML configuration file.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(`# tagcheck configuration
# Checks tag nesting in HTML-like documents.

# Extensions picked up when walking directories.
# Files named on the command line are always checked.
extensions:
  - .html
  - .htm
  - .xhtml

# Number of parallel workers (0 = auto)
# jobs: 0

# Encoding for files without a byte order mark (WHATWG label)
# encoding: utf-8

# Markdown handling: auto, always, or never.
# In Markdown files only embedded HTML is checked.
# markdown: auto

# Descend into symlinked directories while walking.
# follow_symlinks: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "node_modules/**"
#   - "dist/**"
`)

	if !opts.Full {
		buf.WriteString(`
# Per-kind configuration
# kinds:
#   unclosed:
#     enabled: true
#     severity: warning
`)
		return buf.Bytes()
	}

	buf.WriteString("\n# Per-kind configuration\nkinds:\n")
	for _, kind := range tagcheck.Kinds() {
		fmt.Fprintf(&buf, "\n  # %s\n", capitalize(kind.Description()))
		fmt.Fprintf(&buf, "  %s:\n", kind)
		buf.WriteString("    enabled: true\n")
		fmt.Fprintf(&buf, "    severity: %s\n", SeverityError)
	}

	return buf.Bytes()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
