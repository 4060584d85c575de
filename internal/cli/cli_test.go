package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagcheck/internal/cli"
	"github.com/yaklabco/tagcheck/internal/configloader"
	"github.com/yaklabco/tagcheck/pkg/fsutil"
	"github.com/yaklabco/tagcheck/pkg/source"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)

	assert.Equal(t, "tagcheck", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	assert.Contains(t, cmd.Long, `"tagcheck check -- <path>"`)
	assert.Contains(t, cmd.Long, "TAGCHECK_FOLLOW_SYMLINKS")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"check", "kinds", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "persistent flag %s", name)
	}

	check, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	for _, name := range []string{
		"format", "jobs", "ignore", "ext", "encoding",
		"markdown", "disable", "compact", "no-summary", "follow-symlinks",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "root flag %s", name)
		assert.NotNil(t, check.Flags().Lookup(name), "check flag %s", name)
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"issues", cli.ErrIssuesFound, cli.ExitIssues},
		{"usage", fmt.Errorf("%w: no paths given", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("load: %w", configloader.ErrInvalidConfig), cli.ExitConfigError},
		{"not found", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"permission", fsutil.ErrPermissionDenied, cli.ExitIOError},
		{"directory", fsutil.ErrIsDirectory, cli.ExitIOError},
		{"decode", fmt.Errorf("a.html: %w", source.ErrDecode), cli.ExitIOError},
		{"unknown encoding", source.ErrUnknownEncoding, cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeForError(tt.err))
		})
	}
}
