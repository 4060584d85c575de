// Package config defines core configuration types for tagcheck.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import "slices"

// Severity is the reported importance of a diagnostic kind.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// KindConfig holds per-diagnostic-kind configuration.
type KindConfig struct {
	Enabled  *bool   `yaml:"enabled,omitempty"`
	Severity *string `yaml:"severity,omitempty"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// Config is the root configuration structure for tagcheck.
type Config struct {
	// Extensions are the file extensions (with leading dot) picked up when
	// walking directories. Files named explicitly are always checked.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Jobs is the number of parallel workers (0 = NumCPU).
	Jobs int `yaml:"jobs,omitempty"`

	// Encoding is the WHATWG encoding label for files without a byte order mark.
	Encoding string `yaml:"encoding,omitempty"`

	// Markdown selects Markdown handling: auto, always, or never.
	Markdown string `yaml:"markdown,omitempty"`

	// FollowSymlinks makes directory walks descend into symlinked
	// directories. Each resolved directory is walked at most once.
	FollowSymlinks *bool `yaml:"follow_symlinks,omitempty"`

	// Kinds contains per-kind configuration keyed by diagnostic kind.
	Kinds map[string]KindConfig `yaml:"kinds,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Color controls colorized output: auto, always, never.
	Color string `yaml:"-"`

	// DisableKinds lists diagnostic kinds to suppress for this run.
	DisableKinds []string `yaml:"-"`
}

// DefaultExtensions returns the extensions checked when walking directories.
func DefaultExtensions() []string {
	return []string{".html", ".htm", ".xhtml"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
		Encoding:   "utf-8",
		Markdown:   "auto",
		Kinds:      make(map[string]KindConfig),
		Format:     FormatText,
		Color:      "auto",
	}
}

// FollowsSymlinks reports whether directory symlinks are followed.
func (c *Config) FollowsSymlinks() bool {
	return c != nil && c.FollowSymlinks != nil && *c.FollowSymlinks
}

// KindEnabled reports whether diagnostics of kind should be reported.
// Kinds are enabled unless disabled in Kinds or listed in DisableKinds.
func (c *Config) KindEnabled(kind string) bool {
	if c == nil {
		return true
	}
	if slices.Contains(c.DisableKinds, kind) {
		return false
	}
	if kc, ok := c.Kinds[kind]; ok && kc.Enabled != nil {
		return *kc.Enabled
	}
	return true
}

// KindSeverity returns the configured severity for kind, or SeverityError.
func (c *Config) KindSeverity(kind string) Severity {
	if c == nil {
		return SeverityError
	}
	if kc, ok := c.Kinds[kind]; ok && kc.Severity != nil {
		return Severity(*kc.Severity)
	}
	return SeverityError
}
