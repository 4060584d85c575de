package runner

import (
	"context"

	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/source"
	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

// Finding is a diagnostic together with its configured severity.
type Finding struct {
	tagcheck.Diagnostic

	Severity config.Severity
}

// FileResult is the outcome of checking one readable file.
type FileResult struct {
	// Kind is the detected document type.
	Kind source.Kind

	// Size is the file size in bytes.
	Size int64

	// Tags is the number of tags scanned.
	Tags int

	// Findings are the reported diagnostics in validator order.
	Findings []Finding

	// Suppressed counts diagnostics dropped because their kind is disabled.
	Suppressed int
}

// Checker checks a single file.
type Checker interface {
	CheckFile(ctx context.Context, path string) (*FileResult, error)
}

// FileChecker loads files from disk and validates their tag nesting.
// It holds no per-file state and is safe for concurrent use.
type FileChecker struct {
	// Source controls decoding and Markdown handling.
	Source source.Options

	// Config supplies per-kind enablement and severity. May be nil.
	Config *config.Config
}

// NewFileChecker creates a FileChecker from the resolved configuration.
func NewFileChecker(cfg *config.Config) *FileChecker {
	checker := &FileChecker{Config: cfg}
	if cfg != nil {
		checker.Source = source.Options{
			Encoding: cfg.Encoding,
			Markdown: source.MarkdownMode(cfg.Markdown),
		}
	}
	return checker
}

// CheckFile implements Checker.
func (c *FileChecker) CheckFile(ctx context.Context, path string) (*FileResult, error) {
	doc, err := source.Load(ctx, path, c.Source)
	if err != nil {
		return nil, err
	}

	result := c.CheckText(doc.Text)
	result.Kind = doc.Kind
	result.Size = doc.Size

	return result, nil
}

// CheckText validates already decoded markup text, applying the configured
// kind filtering and severities.
func (c *FileChecker) CheckText(text string) *FileResult {
	tokens := tagcheck.Tokenize(text)
	result := c.findings(tagcheck.Check(tokens))
	result.Kind = source.KindMarkup
	result.Size = int64(len(text))
	result.Tags = len(tokens)
	return result
}

func (c *FileChecker) findings(diags []tagcheck.Diagnostic) *FileResult {
	result := &FileResult{}
	if len(diags) > 0 {
		result.Findings = make([]Finding, 0, len(diags))
	}

	for _, diag := range diags {
		kind := string(diag.Kind)
		if !c.Config.KindEnabled(kind) {
			result.Suppressed++
			continue
		}
		result.Findings = append(result.Findings, Finding{
			Diagnostic: diag,
			Severity:   c.Config.KindSeverity(kind),
		})
	}

	return result
}
