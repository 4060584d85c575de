package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagcheck/internal/ui/pretty"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)
	assert.True(t, styles.ColorEnabled())
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)
	assert.False(t, styles.ColorEnabled())

	assert.Equal(t, "test", styles.Render(styles.Bold, "test"))
	assert.Equal(t, "test", styles.Render(styles.Error, "test"))
}

func TestStyles_RenderKeepsTextExactWithoutColor(t *testing.T) {
	styles := pretty.NewStyles(false)

	text := "</div\t\n  >"
	assert.Equal(t, text, styles.Render(styles.Error, text))
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

func TestIsColorEnabled_EmptyModeIsAuto(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf))
}
