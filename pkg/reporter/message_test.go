package reporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/tagcheck/pkg/reporter"
	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		diag tagcheck.Diagnostic
		want string
	}{
		{
			name: "unexpected closing",
			diag: tagcheck.Diagnostic{Kind: tagcheck.KindUnexpectedClosing, Line: 7, Name: "div", Raw: "</DIV >"},
			want: "Line 7: unexpected closing tag </div> (</DIV >)",
		},
		{
			name: "mismatched closing",
			diag: tagcheck.Diagnostic{
				Kind: tagcheck.KindMismatchedClosing, Line: 9, Name: "span", Raw: "</span>",
				ExpectedName: "p", ExpectedLine: 3,
			},
			want: "Line 9: mismatched closing tag </span> (expected </p> opened at line 3)",
		},
		{
			name: "nested mismatched closing",
			diag: tagcheck.Diagnostic{
				Kind: tagcheck.KindMismatchedClosingNested, Line: 1, Name: "div", Raw: "</div>",
				ExpectedName: "p", ExpectedLine: 1,
			},
			want: "Line 1: nested mismatched closing </div> (top was <p> opened at 1)",
		},
		{
			name: "unclosed",
			diag: tagcheck.Diagnostic{Kind: tagcheck.KindUnclosed, Line: 2, Name: "section"},
			want: "Line 2: unclosed tag <section>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reporter.Message(tt.diag))
		})
	}
}

func TestMessage_MatchesValidatorOutput(t *testing.T) {
	t.Parallel()

	diags := tagcheck.Validate("<div><p>text</div></p>")

	messages := make([]string, 0, len(diags))
	for _, d := range diags {
		messages = append(messages, reporter.Message(d))
	}

	assert.Equal(t, []string{
		"Line 1: nested mismatched closing </div> (top was <p> opened at 1)",
		"Line 1: unexpected closing tag </p> (</p>)",
	}, messages)
}
