package magetasks

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/dkoosis/termly/internal/vterm"
	"github.com/dkoosis/termly/pkg/color"
	"github.com/dkoosis/termly/pkg/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, interactive bool) (*Runner, *vterm.Screen, *bytes.Buffer) {
	t.Helper()
	s := vterm.New()
	var out bytes.Buffer
	reg := region.NewRegistry(s, region.Config{Interactive: func() bool { return interactive }})
	return &Runner{Registry: reg, Out: &out}, s, &out
}

func TestRunner_Run_MarksSuccess(t *testing.T) {
	prev := color.Enabled()
	color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(prev) })

	r, s, out := newTestRunner(t, true)

	require.NoError(t, r.Run("say hi", "sh", "-c", "echo hi"))

	assert.Equal(t, "✓ say hi ", s.Line(0))
	row, col := s.Cursor()
	assert.Equal(t, 1, row, "finished line is followed by a newline")
	assert.Zero(t, col)
	assert.Zero(t, s.Overlaps())
	assert.True(t, s.CursorVisible())
	assert.Zero(t, r.Registry.Len())
	assert.Empty(t, out.String(), "output of passing steps is swallowed")
}

func TestRunner_Run_ShowsOutput_When_StepFails(t *testing.T) {
	prev := color.Enabled()
	color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(prev) })

	r, s, out := newTestRunner(t, true)

	err := r.Run("explode", "sh", "-c", "echo boom; exit 3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "explode")
	assert.Equal(t, "✗ explode ", s.Line(0))
	assert.Contains(t, out.String(), "boom")
}

func TestRunner_Run_PrintsPlainLine_When_NotInteractive(t *testing.T) {
	prev := color.Enabled()
	color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(prev) })

	r, s, out := newTestRunner(t, false)

	require.NoError(t, r.Run("quiet", "sh", "-c", "true"))

	assert.Equal(t, "✓ quiet\n", out.String())
	assert.Zero(t, s.OpCount())
}

func TestRunner_Run_ReportsMissingCommand(t *testing.T) {
	r, _, _ := newTestRunner(t, false)

	err := r.Run("ghost", "termly-no-such-command")

	assert.True(t, IsCommandNotFound(err), "got %v", err)
}

func TestIsCommandNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"exec.ErrNotFound", exec.ErrNotFound, true},
		{"wrapped", errors.Join(errors.New("step"), exec.ErrNotFound), true},
		{"message only", errors.New(`exec: "x": executable file not found in $PATH`), true},
		{"other", errors.New("exit status 1"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCommandNotFound(tt.err))
		})
	}
}
