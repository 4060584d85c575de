package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagcheck/pkg/source"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  []byte
		encoding string
		want     string
		wantErr  error
	}{
		{name: "plain utf-8", content: []byte("<p>héllo</p>"), want: "<p>héllo</p>"},
		{name: "utf-8 bom stripped", content: []byte("\xEF\xBB\xBF<p>"), want: "<p>"},
		{
			name:    "utf-16le bom",
			content: []byte{0xFF, 0xFE, '<', 0, 'b', 0, 'r', 0, '>', 0},
			want:    "<br>",
		},
		{
			name:     "bom wins over configured encoding",
			content:  []byte{0xFE, 0xFF, 0, '<', 0, 'i', 0, '>'},
			encoding: "windows-1252",
			want:     "<i>",
		},
		{name: "windows-1252", content: []byte("caf\xe9"), encoding: "windows-1252", want: "café"},
		{name: "label is case-insensitive", content: []byte("caf\xe9"), encoding: "Latin1", want: "café"},
		{name: "invalid utf-8", content: []byte("<p>\xc3\x28</p>"), wantErr: source.ErrDecode},
		{name: "unknown encoding", content: []byte("x"), encoding: "klingon", wantErr: source.ErrUnknownEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := source.Decode(tt.content, tt.encoding)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEncoding(t *testing.T) {
	t.Parallel()

	require.NoError(t, source.ValidateEncoding(""))
	require.NoError(t, source.ValidateEncoding("UTF-8"))
	require.NoError(t, source.ValidateEncoding("shift_jis"))
	require.ErrorIs(t, source.ValidateEncoding("nope"), source.ErrUnknownEncoding)
}
