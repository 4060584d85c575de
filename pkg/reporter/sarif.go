package reporter

import (
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/runner"
	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://json.schemastore.org/sarif-2.1.0.json"
)

// The SARIF 2.1.0 subset tagcheck emits: one run, one rule per diagnostic
// kind, one result per finding. Files that could not be checked become
// tool execution notifications on the single invocation.
type (
	SARIFOutput struct {
		Schema  string     `json:"$schema"`
		Version string     `json:"version"`
		Runs    []SARIFRun `json:"runs"`
	}

	SARIFRun struct {
		Tool        SARIFTool         `json:"tool"`
		Results     []SARIFResult     `json:"results"`
		Invocations []SARIFInvocation `json:"invocations,omitempty"`
	}

	SARIFTool struct {
		Driver SARIFDriver `json:"driver"`
	}

	SARIFDriver struct {
		Name           string      `json:"name"`
		Version        string      `json:"version"`
		InformationURI string      `json:"informationUri"`
		Rules          []SARIFRule `json:"rules"`
	}

	SARIFRule struct {
		ID                   string           `json:"id"`
		ShortDescription     SARIFText        `json:"shortDescription"`
		DefaultConfiguration SARIFRuleDefault `json:"defaultConfiguration"`
	}

	SARIFRuleDefault struct {
		Level string `json:"level"`
	}

	// SARIFText is SARIF's message and multiformatMessageString object.
	SARIFText struct {
		Text string `json:"text"`
	}

	SARIFResult struct {
		RuleID    string          `json:"ruleId"`
		RuleIndex int             `json:"ruleIndex"`
		Level     string          `json:"level"`
		Message   SARIFText       `json:"message"`
		Locations []SARIFLocation `json:"locations"`
	}

	SARIFLocation struct {
		PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
	}

	SARIFPhysicalLocation struct {
		ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
		Region           *SARIFRegion          `json:"region,omitempty"`
	}

	SARIFArtifactLocation struct {
		URI string `json:"uri"`
	}

	// SARIFRegion locates a finding. Snippet carries the raw tag text when
	// the diagnostic has one.
	SARIFRegion struct {
		StartLine int        `json:"startLine"`
		Snippet   *SARIFText `json:"snippet,omitempty"`
	}

	SARIFInvocation struct {
		ExecutionSuccessful        bool                `json:"executionSuccessful"`
		ToolExecutionNotifications []SARIFNotification `json:"toolExecutionNotifications,omitempty"`
	}

	SARIFNotification struct {
		Level     string          `json:"level"`
		Message   SARIFText       `json:"message"`
		Locations []SARIFLocation `json:"locations,omitempty"`
	}
)

// SARIFReporter formats results as a SARIF log for code scanning tools.
type SARIFReporter struct {
	opts Options
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)
	if err := writeJSON(r.opts.Writer, output, r.opts.Compact); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}
	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	kinds := tagcheck.Kinds()
	rules := make([]SARIFRule, len(kinds))
	for i, kind := range kinds {
		rules[i] = SARIFRule{
			ID:                   kind.String(),
			ShortDescription:     SARIFText{Text: kind.Description()},
			DefaultConfiguration: SARIFRuleDefault{Level: sarifLevel(config.SeverityError)},
		}
	}

	results := make([]SARIFResult, 0)
	invocation := SARIFInvocation{ExecutionSuccessful: true}

	for _, file := range resultFiles(result) {
		artifact := SARIFArtifactLocation{URI: r.opts.displayPath(file.Path)}

		if file.Error != nil {
			invocation.ExecutionSuccessful = false
			invocation.ToolExecutionNotifications = append(invocation.ToolExecutionNotifications, SARIFNotification{
				Level:     "error",
				Message:   SARIFText{Text: file.Error.Error()},
				Locations: []SARIFLocation{{PhysicalLocation: SARIFPhysicalLocation{ArtifactLocation: artifact}}},
			})
			continue
		}

		for _, finding := range file.Findings() {
			region := &SARIFRegion{StartLine: finding.Line}
			if finding.Raw != "" {
				region.Snippet = &SARIFText{Text: finding.Raw}
			}

			results = append(results, SARIFResult{
				RuleID:    finding.Kind.String(),
				RuleIndex: slices.Index(kinds, finding.Kind),
				Level:     sarifLevel(finding.Severity),
				Message:   SARIFText{Text: Message(finding.Diagnostic)},
				Locations: []SARIFLocation{{PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: artifact,
					Region:           region,
				}}},
			})
		}
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []SARIFRun{{
			Tool: SARIFTool{Driver: SARIFDriver{
				Name:           "tagcheck",
				Version:        r.opts.ToolVersion,
				InformationURI: "https://github.com/yaklabco/tagcheck",
				Rules:          rules,
			}},
			Results:     results,
			Invocations: []SARIFInvocation{invocation},
		}},
	}
}

func sarifLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
