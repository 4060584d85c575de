package configloader

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/source"
	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	Field    string // dotted path, e.g. "kinds.unclosed.severity"
	Value    any
	Message  string
	FilePath string // config file the value came from, if known
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.FilePath != "" {
		msg = e.FilePath + ": " + msg
	}
	return msg
}

// Unwrap makes every validation error match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationResult collects the problems found in a configuration.
// Errors reject the configuration; warnings are reported and ignored.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether no errors were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	knownFormats = []config.OutputFormat{
		config.FormatText, config.FormatJSON, config.FormatSARIF, config.FormatSummary,
	}
	knownColorModes = []string{"auto", "always", "never"}
)

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !slices.Contains(knownFormats, cfg.Format) {
		result.addError("format", cfg.Format,
			fmt.Sprintf("invalid format %q; must be one of: text, json, sarif, summary", cfg.Format))
	}

	if cfg.Color != "" && !slices.Contains(knownColorModes, cfg.Color) {
		result.addError("color", cfg.Color,
			fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color))
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if err := source.ValidateEncoding(cfg.Encoding); err != nil {
		result.addError("encoding", cfg.Encoding, err.Error())
	}

	if _, err := source.ParseMarkdownMode(cfg.Markdown); err != nil {
		result.addError("markdown", cfg.Markdown, err.Error())
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.addError(fmt.Sprintf("extensions[%d]", i), ext,
				fmt.Sprintf("extension %q must start with a dot", ext))
		}
	}

	validateKinds(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func (r *ValidationResult) addError(field string, value any, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
}

// validateKinds checks per-kind configuration and the disabled kind list.
func validateKinds(cfg *config.Config, result *ValidationResult) {
	for _, name := range slices.Sorted(maps.Keys(cfg.Kinds)) {
		kindCfg := cfg.Kinds[name]

		if _, err := tagcheck.ParseKind(name); err != nil {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "kinds." + name,
				Value:   name,
				Message: fmt.Sprintf("unknown diagnostic kind %q; it will be ignored", name),
			})
		}

		if kindCfg.Severity != nil && !config.Severity(*kindCfg.Severity).IsValid() {
			result.addError("kinds."+name+".severity", *kindCfg.Severity,
				fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *kindCfg.Severity))
		}
	}

	for i, name := range cfg.DisableKinds {
		if _, err := tagcheck.ParseKind(name); err != nil {
			result.addError(fmt.Sprintf("disable[%d]", i), name, err.Error())
		}
	}
}

func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(filepath.ToSlash(pattern), '/'); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern,
				fmt.Sprintf("invalid glob pattern: %v", err))
		}
	}
}

// ValidateWithFile is Validate with every finding attributed to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for _, list := range [][]ValidationError{result.Errors, result.Warnings} {
		for i := range list {
			list[i].FilePath = filePath
		}
	}
	return result
}
