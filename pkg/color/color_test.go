package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withColor forces the process-wide switch for one test.
func withColor(t *testing.T, on bool) {
	t.Helper()
	prev := Enabled()
	SetEnabled(on)
	t.Cleanup(func() { SetEnabled(prev) })
}

func TestColorize_WrapsForeground(t *testing.T) {
	withColor(t, true)

	assert.Equal(t, "\x1b[31mhi\x1b[0m", Colorize("hi", Red, None))
	assert.Equal(t, "\x1b[92mok\x1b[0m", Colorize("ok", BrightGreen, None))
}

func TestColorize_AddsBackground_When_Given(t *testing.T) {
	withColor(t, true)

	got := Colorize("x", White, Blue)

	assert.Contains(t, got, "37")
	assert.Contains(t, got, "44")
	assert.Contains(t, got, "x")
	assert.Contains(t, got, "\x1b[0m")
}

func TestColorize_ReturnsTextUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		text    string
		fg, bg  Color
	}{
		{"disabled", false, "plain", Red, Blue},
		{"empty text", true, "", Red, None},
		{"no colors", true, "plain", None, None},
		{"out of range", true, "plain", Color(42), None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withColor(t, tt.enabled)
			assert.Equal(t, tt.text, Colorize(tt.text, tt.fg, tt.bg))
		})
	}
}

func TestSprintf_FormatsThenColors(t *testing.T) {
	withColor(t, false)

	assert.Equal(t, "3 of 4", Sprintf(Red, "%d of %d", 3, 4))
}

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := Parse("Bright_Blue")
	require.NoError(t, err)
	assert.Equal(t, BrightBlue, c)
	assert.Equal(t, "bright-blue", c.String())

	c, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, None, c)

	_, err = Parse("mauve")
	assert.Error(t, err)
}
