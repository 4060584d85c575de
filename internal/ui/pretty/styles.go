// Package pretty renders the styled pieces of tagcheck's terminal output.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI palette indexes.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorBlue   = lipgloss.Color("12")
	colorGray   = lipgloss.Color("8")
	colorWhite  = lipgloss.Color("7")
)

// Styles holds the lipgloss styles for terminal output. Apply them with
// Render so that disabling color leaves text untouched.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	FilePath lipgloss.Style
	Location lipgloss.Style
	KindID   lipgloss.Style

	Success lipgloss.Style
	Failure lipgloss.Style

	TableHeader lipgloss.Style
	TableRule   lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style

	colorEnabled bool
}

// NewStyles creates the output styles. With colorEnabled false, Render
// returns its input unchanged.
func NewStyles(colorEnabled bool) *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		Error:   fg(colorRed).Bold(true),
		Warning: fg(colorYellow).Bold(true),
		Info:    fg(colorBlue).Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true).Underline(true),
		Location: fg(colorGray),
		KindID:   fg(colorGray),

		Success: fg(colorGreen).Bold(true),
		Failure: fg(colorRed).Bold(true),

		TableHeader: fg(colorWhite).Bold(true),
		TableRule:   fg(colorGray),

		Dim:  fg(colorGray),
		Bold: lipgloss.NewStyle().Bold(true),

		colorEnabled: colorEnabled,
	}
}

// ColorEnabled reports whether Render emits ANSI sequences.
func (s *Styles) ColorEnabled() bool {
	return s.colorEnabled
}

// Render applies style to text. Without color the text is returned
// untouched: lipgloss expands tabs and pads multi-line strings even for an
// empty style, and diagnostic text must stay byte-exact.
func (s *Styles) Render(style lipgloss.Style, text string) string {
	if !s.colorEnabled {
		return text
	}
	return style.Render(text)
}

// IsColorEnabled resolves a color mode of "always", "never" or "auto" for
// writer. Auto means color only on a terminal and only when NO_COLOR is unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
