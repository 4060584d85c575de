package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/reporter"
	"github.com/yaklabco/tagcheck/pkg/runner"
)

// fileText pairs a path with its document text.
type fileText struct {
	path string
	text string
}

// buildResult validates each text and assembles a runner.Result as the
// runner would.
func buildResult(cfg *config.Config, files ...fileText) *runner.Result {
	checker := runner.NewFileChecker(cfg)
	result := runner.NewResult()
	for _, f := range files {
		result.Add(runner.FileOutcome{Path: f.path, Result: checker.CheckText(f.text)})
	}
	return result
}

func addFailure(result *runner.Result, path string, err error) {
	result.Add(runner.FileOutcome{Path: path, Error: err})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "sarif", input: "sarif", want: reporter.FormatSARIF},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.False(t, reporter.Format("unknown").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "sarif reporter", format: reporter.FormatSARIF},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	assert.NotNil(t, opts.Writer)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowSummary)
}

func TestTextReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestTextReporter_SingleFileClean(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	result := buildResult(nil, fileText{"index.html", "<!DOCTYPE html>\n<html><body><br></body></html>"})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, "No tag mismatches or unclosed tags detected.\n", buf.String())
}

func TestTextReporter_SingleFileIssues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	text := "<html>\n<body>\n<div>\n<p>text</div>\n</span>\n</body>\n</html>\n</em>"
	result := buildResult(nil, fileText{"page.html", text})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	want := strings.Join([]string{
		"Found 3 issues:",
		"Line 4: nested mismatched closing </div> (top was <p> opened at 4)",
		"Line 5: mismatched closing tag </span> (expected </body> opened at line 2)",
		"Line 8: unexpected closing tag </em> (</em>)",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_MultipleFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/site",
	})

	result := buildResult(nil,
		fileText{"/site/a.html", "<ul>\n<li>one"},
		fileText{"/site/b.html", "<p></p>"},
		fileText{"/site/docs/c.html", "</section>"},
	)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	want := strings.Join([]string{
		"Found 3 issues:",
		"a.html (2 issues)",
		"  Line 1: unclosed tag <ul>",
		"  Line 2: unclosed tag <li>",
		"docs/c.html (1 issue)",
		"  Line 1: unexpected closing tag </section> (</section>)",
		"",
		"3 issues (3 errors) in 2 of 3 files",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_MultipleFilesListsUnreadable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/site",
	})

	result := buildResult(nil, fileText{"/site/a.html", "<p>"})
	addFailure(result, "/site/b.html", errors.New("decode failed"))
	result.Add(runner.FileOutcome{Path: "/site/c.html", Result: runner.NewFileChecker(nil).CheckText("<br>")})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	want := strings.Join([]string{
		"Found 1 issues:",
		"a.html (1 issue)",
		"  Line 1: unclosed tag <p>",
		"b.html: error: decode failed",
		"",
		"1 issue (1 error) in 1 of 2 files, 1 file failed",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_MultipleFilesCleanWithUnreadable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", WorkingDir: "/site"})

	result := buildResult(nil, fileText{"/site/a.html", "<p></p>"})
	addFailure(result, "/site/gone.html", errors.New("file not found"))

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, "No tag mismatches or unclosed tags detected.\ngone.html: error: file not found\n", buf.String())
}

func TestTextReporter_FileErrorsAreNotPrinted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	result := buildResult(nil)
	addFailure(result, "gone.html", errors.New("file not found"))

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, buf.String())
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Empty(t, output.Files)
	assert.Equal(t, 0, output.Summary.TotalIssues)
}

func TestJSONReporter_WithDiagnostics(t *testing.T) {
	t.Parallel()

	warning := string(config.SeverityWarning)
	cfg := config.NewConfig()
	cfg.Kinds["unclosed"] = config.KindConfig{Severity: &warning}

	result := buildResult(cfg, fileText{"/w/a.html", "<div>\n</span>"})
	addFailure(result, "/w/b.html", errors.New("decode failed"))

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: "/w", ToolVersion: "1.2.3"})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.2.3", output.ToolVersion)
	require.Len(t, output.Files, 2)
	assert.Equal(t, "a.html", output.Files[0].Path)
	assert.Equal(t, "markup", output.Files[0].Kind)

	diags := output.Files[0].Diagnostics
	require.Len(t, diags, 2)
	assert.Equal(t, "mismatched-closing", diags[0].Kind)
	assert.Equal(t, "error", diags[0].Severity)
	assert.Equal(t, "span", diags[0].Name)
	assert.Equal(t, "div", diags[0].ExpectedName)
	assert.Equal(t, 1, diags[0].ExpectedLine)
	assert.Equal(t, "Line 2: mismatched closing tag </span> (expected </div> opened at line 1)", diags[0].Message)
	assert.Equal(t, "unclosed", diags[1].Kind)
	assert.Equal(t, "warning", diags[1].Severity)

	assert.Equal(t, "decode failed", output.Files[1].Error)
	assert.Equal(t, 1, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
	assert.Equal(t, map[string]int{"mismatched-closing": 1, "unclosed": 1}, output.Summary.ByKind)
	assert.Equal(t, map[string]int{"error": 1, "warning": 1}, output.Summary.BySeverity)
}

func TestJSONReporter_KeepsAngleBrackets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), buildResult(nil, fileText{"a.html", "<b>"}))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"message":"Line 1: unclosed tag <b>"`)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestSARIFReporter(t *testing.T) {
	t.Parallel()

	result := buildResult(nil, fileText{"/w/a.html", "<div>\n\n</p>"})
	addFailure(result, "/w/z.html", errors.New("permission denied"))

	var buf bytes.Buffer
	rep := reporter.NewSARIFReporter(reporter.Options{Writer: &buf, WorkingDir: "/w", ToolVersion: "dev"})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Runs, 1)
	run := output.Runs[0]
	assert.Equal(t, "tagcheck", run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 4)
	assert.Equal(t, "unexpected-closing", run.Tool.Driver.Rules[0].ID)

	require.Len(t, run.Results, 2)
	assert.Equal(t, "mismatched-closing", run.Results[0].RuleID)
	assert.Equal(t, 1, run.Results[0].RuleIndex)
	assert.Equal(t, "error", run.Results[0].Level)
	assert.Equal(t, 3, run.Results[0].Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, "a.html", run.Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, "unclosed", run.Results[1].RuleID)
	assert.Equal(t, 3, run.Results[1].RuleIndex)

	require.Len(t, run.Invocations, 1)
	assert.False(t, run.Invocations[0].ExecutionSuccessful)
	require.Len(t, run.Invocations[0].ToolExecutionNotifications, 1)
	assert.Equal(t, "permission denied", run.Invocations[0].ToolExecutionNotifications[0].Message.Text)
}

func TestSummaryReporter_NoIssues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), buildResult(nil, fileText{"a.html", "<p></p>"}))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, "No issues found\n", buf.String())
}

func TestSummaryReporter_Tables(t *testing.T) {
	t.Parallel()

	result := buildResult(nil,
		fileText{"a.html", "<div>"},
		fileText{"b.html", "<ul><li>\n</ol>"},
	)

	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	output := buf.String()
	assert.Contains(t, output, "Kinds Summary")
	assert.Contains(t, output, "Files Summary")
	assert.Contains(t, output, "Check failed with errors")

	// Kinds follow their declaration order.
	assert.Less(t, strings.Index(output, "mismatched-closing"), strings.Index(output, "unclosed"))

	// Files with more issues come first.
	assert.Less(t, strings.Index(output, "b.html"), strings.Index(output, "a.html"))
}
