package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagcheck/pkg/fsutil"
	"github.com/yaklabco/tagcheck/pkg/source"
)

func TestDetectKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		mode    source.MarkdownMode
		want    source.Kind
	}{
		{name: "html", path: "index.html", content: "<p>", want: source.KindMarkup},
		{name: "htm", path: "old/INDEX.HTM", content: "<p>", want: source.KindMarkup},
		{name: "xhtml", path: "ch1.xhtml", content: "<p/>", want: source.KindMarkup},
		{name: "markdown", path: "README.md", content: "# Title\n", want: source.KindMarkdown},
		{name: "markdown long ext", path: "notes.markdown", content: "# Notes\n", want: source.KindMarkdown},
		{name: "always", path: "index.html", content: "<p>", mode: source.MarkdownAlways, want: source.KindMarkdown},
		{name: "never", path: "README.md", content: "# Title\n", mode: source.MarkdownNever, want: source.KindMarkup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, source.DetectKind(tt.path, []byte(tt.content), tt.mode))
		})
	}
}

func TestParseMarkdownMode(t *testing.T) {
	t.Parallel()

	mode, err := source.ParseMarkdownMode("")
	require.NoError(t, err)
	assert.Equal(t, source.MarkdownAuto, mode)

	mode, err = source.ParseMarkdownMode("never")
	require.NoError(t, err)
	assert.Equal(t, source.MarkdownNever, mode)

	_, err = source.ParseMarkdownMode("sometimes")
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("html document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>x</p>"), 0644))

		doc, err := source.Load(context.Background(), path, source.Options{})
		require.NoError(t, err)

		assert.Equal(t, source.KindMarkup, doc.Kind)
		assert.Equal(t, "<p>x</p>", doc.Text)
		assert.Equal(t, int64(8), doc.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := source.Load(context.Background(), filepath.Join(t.TempDir(), "x.html"), source.Options{})
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("undecodable file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.html")
		require.NoError(t, os.WriteFile(path, []byte{'<', 'p', '>', 0xc3, 0x28}, 0644))

		_, err := source.Load(context.Background(), path, source.Options{})
		require.ErrorIs(t, err, source.ErrDecode)
	})
}
