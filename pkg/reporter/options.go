package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

const bufWriterSize = 64 * 1024

// Options configures a Reporter.
type Options struct {
	Writer io.Writer
	Format Format

	// Color is "auto", "always" or "never".
	Color string

	// ShowSummary appends the one-line summary to multi-file text output.
	ShowSummary bool

	// Compact disables indentation in JSON and SARIF.
	Compact bool

	// WorkingDir is the base for the relative paths shown in output.
	// Paths outside it are shown as given.
	WorkingDir string

	ToolVersion string
}

// DefaultOptions returns the options used for unset fields.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
		ToolVersion: "dev",
	}
}

func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
