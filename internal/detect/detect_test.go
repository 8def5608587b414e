package detect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInteractive_ReturnsFalse_When_WriterHasNoDescriptor(t *testing.T) {
	t.Parallel()

	assert.False(t, IsInteractive(&bytes.Buffer{}))
}

func TestIsInteractive_ReturnsFalse_When_FileIsRegular(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsInteractive(f))
}

func TestTermSize_FallsBack_When_NotATerminal(t *testing.T) {
	t.Parallel()

	w, h := TermSize(&bytes.Buffer{})

	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestNoColorRequested(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NoColorRequested())
	assert.False(t, ColorSupported())

	t.Setenv("NO_COLOR", "")
	assert.False(t, NoColorRequested())
}
