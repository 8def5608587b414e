package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dkoosis/termly/pkg/color"
	"github.com/dkoosis/termly/pkg/region"
)

// DefaultStatusMargin separates a status line from its neighbors.
var DefaultStatusMargin = Margin{Left: 1, Right: 1}

// StatusConfig configures a Status.
type StatusConfig struct {
	Margin *Margin // nil means DefaultStatusMargin
}

// Status is a single line of text that can be rewritten in place. It starts
// zero cells wide and grows to fit the widest text written so far, so
// shorter text never leaves residue behind.
type Status struct {
	r *region.Region
}

// NewStatus opens a status line at the cursor.
func NewStatus(reg *region.Registry, cfg StatusConfig) (*Status, error) {
	m := cfg.Margin.or(DefaultStatusMargin)
	r, err := open(reg, region.RegionConfig{MarginLeft: m.Left, MarginRight: m.Right})
	if err != nil {
		return nil, err
	}
	return &Status{r: r}, nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ")

// flatten turns control characters other than ESC into single spaces. Tabs
// and line breaks move the terminal cursor by amounts the width measure
// cannot see.
func flatten(text string) string {
	return strings.Map(func(r rune) rune {
		if (r < 0x20 && r != 0x1b) || r == 0x7f {
			return ' '
		}
		return r
	}, lineBreaks.Replace(text))
}

// Write replaces the status text. Line breaks, tabs and other control
// characters are flattened to spaces; the region covers one row.
func (s *Status) Write(text string) error {
	text = flatten(text)
	s.r.Widen(lipgloss.Width(text))
	return s.r.Update(region.Clear, paintString(text))
}

// WriteColor replaces the status text, drawn in fg.
func (s *Status) WriteColor(fg color.Color, text string) error {
	return s.Write(color.Colorize(flatten(text), fg, color.None))
}

// Region returns the underlying region.
func (s *Status) Region() *region.Region {
	return s.r
}

// Close releases the region and leaves the last text on screen.
func (s *Status) Close() error {
	return s.r.Detach()
}
