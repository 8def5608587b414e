package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilled_RoundsUpAndClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width, percent, want int
	}{
		{10, 0, 0},
		{10, 1, 1},
		{10, 10, 1},
		{10, 11, 2},
		{10, 99, 10},
		{10, 100, 10},
		{10, 150, 10},
		{10, -5, 0},
		{20, 50, 10},
		{3, 34, 2},
		{0, 50, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filled(tt.width, tt.percent), "Filled(%d, %d)", tt.width, tt.percent)
	}
}

func TestBar_PaintsEmptyBarAndHidesCursor_When_Created(t *testing.T) {
	t.Parallel()

	reg, s := newTestRegistry(t)

	bar, err := NewBar(reg, BarConfig{})
	require.NoError(t, err)

	assert.Equal(t, "[----------]", s.Line(0))
	assert.False(t, s.CursorVisible())
	assert.Equal(t, 12, bar.Region().Geometry().MaxWidth)
}

func TestBar_Report(t *testing.T) {
	t.Parallel()

	reg, s := newTestRegistry(t)
	bar, err := NewBar(reg, BarConfig{})
	require.NoError(t, err)

	require.NoError(t, bar.Report(42))
	assert.Equal(t, "[#####-----]", s.Line(0))

	require.NoError(t, bar.Report(250))
	assert.Equal(t, "[##########]", s.Line(0))
}

func TestBar_Render_UsesBlockAndBorder(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	bar, err := NewBar(reg, BarConfig{Width: 4, Block: Block{Fill: '='}, Border: &NoBorder})
	require.NoError(t, err)

	assert.Equal(t, "==  ", bar.Render(50))
	assert.Equal(t, 4, bar.Region().Geometry().MaxWidth)
}

func TestBar_Close_ErasesAndRestoresCursor(t *testing.T) {
	t.Parallel()

	reg, s := newTestRegistry(t)
	bar, err := NewBar(reg, BarConfig{})
	require.NoError(t, err)
	require.NoError(t, bar.Report(100))

	require.NoError(t, bar.Close())
	require.NoError(t, bar.Close())

	assert.True(t, s.IsBlank())
	assert.True(t, s.CursorVisible())
	assert.Zero(t, reg.Len())
}

func TestBar_SecondBarPacksAfterFirst(t *testing.T) {
	t.Parallel()

	reg, s := newTestRegistry(t)
	first, err := NewBar(reg, BarConfig{})
	require.NoError(t, err)
	second, err := NewBar(reg, BarConfig{Width: 20, Block: DefaultBlock})
	require.NoError(t, err)

	r1, r2 := first.Region(), second.Region()
	assert.Equal(t, r1.Row(), r2.Row())
	assert.Equal(t, r1.Col()+r1.Geometry().Footprint(), r2.Col())
	assert.Equal(t, "[----------]["+strings.Repeat("-", 20)+"]", s.Line(0))

	require.NoError(t, first.Close())
	assert.False(t, s.CursorVisible(), "second bar still hides the cursor")
	require.NoError(t, second.Close())
	assert.True(t, s.CursorVisible())
}
