package widget

import (
	"context"
	"math"
	"slices"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinner_Frame_WrapsAnyInt(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	sp, err := NewSpinner(reg, SpinnerConfig{})
	require.NoError(t, err)

	tests := []struct {
		v    int
		want string
	}{
		{0, "-"},
		{1, `\`},
		{3, "/"},
		{4, "-"},
		{-1, "/"},
		{-5, "/"},
		{-4, "-"},
		{math.MaxInt, "/"},
		{math.MinInt, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sp.Frame(tt.v), "Frame(%d)", tt.v)
	}
}

func TestSpinner_PaintsFirstFrameAndHidesCursor_When_Created(t *testing.T) {
	t.Parallel()

	reg, s := newTestRegistry(t)

	_, err := NewSpinner(reg, SpinnerConfig{Style: "braille"})
	require.NoError(t, err)

	assert.Equal(t, "⣾", s.Line(0))
	assert.False(t, s.CursorVisible())
}

func TestSpinner_Spin_AdvancesFromLastReport(t *testing.T) {
	t.Parallel()

	reg, s := newTestRegistry(t)
	sp, err := NewSpinner(reg, SpinnerConfig{})
	require.NoError(t, err)

	require.NoError(t, sp.Spin())
	assert.Equal(t, `\`, s.Line(0))

	require.NoError(t, sp.Report(6))
	require.NoError(t, sp.Spin())
	assert.Equal(t, "/", s.Line(0))
}

func TestSpinner_FramesOverrideStyle(t *testing.T) {
	t.Parallel()

	reg, s := newTestRegistry(t)
	sp, err := NewSpinner(reg, SpinnerConfig{Style: "clock", Frames: []string{"a", "bbb"}})
	require.NoError(t, err)

	assert.Equal(t, 3, sp.Region().Geometry().MaxWidth)
	assert.Equal(t, "a  ", sp.Frame(0))
	require.NoError(t, sp.Spin())
	assert.Equal(t, "bbb", s.Line(0))
}

func TestSpinner_FallsBackToLine_When_StyleUnknown(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	sp, err := NewSpinner(reg, SpinnerConfig{Style: "nope"})
	require.NoError(t, err)

	assert.Equal(t, "-", sp.Frame(0))
	assert.Equal(t, SpinnerStyles["line"].Interval, sp.Interval())
}

func TestSpinner_Close(t *testing.T) {
	t.Parallel()

	t.Run("paints done glyph", func(t *testing.T) {
		reg, s := newTestRegistry(t)
		sp, err := NewSpinner(reg, SpinnerConfig{Done: "✓"})
		require.NoError(t, err)

		require.NoError(t, sp.Close())

		assert.Equal(t, "✓", s.Line(0))
		assert.True(t, s.CursorVisible())
		assert.Zero(t, reg.Len())
	})

	t.Run("erases when done is blank", func(t *testing.T) {
		reg, s := newTestRegistry(t)
		sp, err := NewSpinner(reg, SpinnerConfig{Done: " "})
		require.NoError(t, err)

		require.NoError(t, sp.Close())

		assert.True(t, s.IsBlank())
		assert.True(t, s.CursorVisible())
	})

	t.Run("widens to fit done text", func(t *testing.T) {
		reg, s := newTestRegistry(t)
		sp, err := NewSpinner(reg, SpinnerConfig{Done: "ok!"})
		require.NoError(t, err)
		assert.Equal(t, 3, sp.Region().Geometry().MaxWidth)

		require.NoError(t, sp.Close())
		assert.Equal(t, "ok!", s.Line(0))
	})
}

func TestSpinner_Animate_ReturnsNil_When_Cancelled(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	sp, err := NewSpinner(reg, SpinnerConfig{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, sp.Animate(ctx))
}

func TestSpinnerStyles_AreUsable(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "line")
	assert.Contains(t, names, "dot")

	for _, name := range names {
		style := SpinnerStyles[name]
		assert.NotEmpty(t, style.Frames, name)
		assert.Positive(t, style.Interval, name)
		for _, f := range style.Frames {
			assert.LessOrEqual(t, runewidth.StringWidth(f), 8, "%s frame %q", name, f)
		}
	}
}

func TestParseFrames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"ab", "cd"}, ParseFrames(" ab cd "))
	assert.Equal(t, []string{"⣾", "⣽"}, ParseFrames("⣾⣽"))
	assert.Nil(t, ParseFrames("   "))
}
