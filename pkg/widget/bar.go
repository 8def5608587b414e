package widget

import (
	"strings"

	"github.com/dkoosis/termly/pkg/region"
	"github.com/mattn/go-runewidth"
)

// DefaultBarWidth is the number of cells between the borders.
const DefaultBarWidth = 10

// Block is the pair of glyphs a bar is drawn with.
type Block struct {
	Fill rune
	Pad  rune
}

// Border is the pair of glyphs around a bar. A zero rune is omitted.
type Border struct {
	Left  rune
	Right rune
}

// Width returns the number of cells the border occupies.
func (b Border) Width() int {
	w := 0
	if b.Left != 0 {
		w += runewidth.RuneWidth(b.Left)
	}
	if b.Right != 0 {
		w += runewidth.RuneWidth(b.Right)
	}
	return w
}

// Bar styles.
var (
	DefaultBlock  = Block{Fill: '#', Pad: '-'}
	SquareBlock   = Block{Fill: '■', Pad: ' '}
	DefaultBorder = Border{Left: '[', Right: ']'}
	NoBorder      = Border{}
)

// BarConfig configures a Bar. Zero values select the defaults.
type BarConfig struct {
	Width  int     // cells between the borders, default DefaultBarWidth
	Block  Block   // default DefaultBlock
	Border *Border // nil means DefaultBorder
	Margin Margin
}

// Bar is a percentage progress bar. It hides the cursor while it is live and
// paints an empty bar as soon as it is created.
type Bar struct {
	r      *region.Region
	width  int
	cell   int
	block  Block
	border Border
}

// NewBar opens a progress bar at the cursor.
func NewBar(reg *region.Registry, cfg BarConfig) (*Bar, error) {
	b := &Bar{
		width:  cfg.Width,
		block:  cfg.Block,
		border: DefaultBorder,
	}
	if b.width <= 0 {
		b.width = DefaultBarWidth
	}
	if b.block == (Block{}) {
		b.block = DefaultBlock
	}
	if b.block.Pad == 0 {
		b.block.Pad = ' '
	}
	if cfg.Border != nil {
		b.border = *cfg.Border
	}
	b.cell = max(runewidth.RuneWidth(b.block.Fill), runewidth.RuneWidth(b.block.Pad), 1)

	r, err := open(reg, region.RegionConfig{
		MarginLeft:  cfg.Margin.Left,
		MarginRight: cfg.Margin.Right,
		MaxWidth:    b.border.Width() + b.width*b.cell,
		HideCursor:  true,
	})
	if err != nil {
		return nil, err
	}
	b.r = r
	if err := b.Report(0); err != nil {
		_ = r.Close()
		return nil, err
	}
	return b, nil
}

// Filled returns how many of width cells are filled at percent, rounding up.
// percent is clamped to [0, 100].
func Filled(width, percent int) int {
	percent = min(max(percent, 0), 100)
	return (width*percent + 99) / 100
}

// Render returns the bar as drawn at percent.
func (b *Bar) Render(percent int) string {
	n := Filled(b.width, percent)
	fill := runewidth.FillRight(string(b.block.Fill), b.cell)
	pad := runewidth.FillRight(string(b.block.Pad), b.cell)

	var sb strings.Builder
	if b.border.Left != 0 {
		sb.WriteRune(b.border.Left)
	}
	sb.WriteString(strings.Repeat(fill, n))
	sb.WriteString(strings.Repeat(pad, b.width-n))
	if b.border.Right != 0 {
		sb.WriteRune(b.border.Right)
	}
	return sb.String()
}

// Report redraws the bar at percent. Values outside [0, 100] are clamped.
func (b *Bar) Report(percent int) error {
	return b.r.Update(region.Repaint, paintString(b.Render(percent)))
}

// Region returns the underlying region.
func (b *Bar) Region() *region.Region {
	return b.r
}

// Close erases the bar and restores the cursor.
func (b *Bar) Close() error {
	return b.r.Close()
}
