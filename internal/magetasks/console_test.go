package magetasks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dkoosis/termly/pkg/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevColor := Out, color.Enabled()
	Out = &buf
	color.SetEnabled(false)
	t.Cleanup(func() {
		Out = prevOut
		color.SetEnabled(prevColor)
	})
	return &buf
}

func TestPrintHeaders(t *testing.T) {
	buf := captureOut(t)

	PrintH1Header("Release")
	PrintH2Header("Build")

	assert.Contains(t, buf.String(), "Release")
	assert.Contains(t, buf.String(), "====")
	assert.Contains(t, buf.String(), "=== Build ===")
}

func TestPrintMessages(t *testing.T) {
	buf := captureOut(t)

	PrintSuccess("built")
	PrintWarning("slow")
	PrintError("broken")

	assert.Equal(t, "✓ built\n! slow\n✗ broken\n", buf.String())
}

func TestInitialize_CreatesBinDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, Initialize())

	assert.DirExists(t, filepath.Join(dir, "bin"))
	wantRoot, _ := filepath.EvalSymlinks(dir)
	gotRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, wantRoot, gotRoot)
	_, err := os.Stat(BinPath)
	assert.True(t, os.IsNotExist(err))
}
