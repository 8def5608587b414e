package widget

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/dkoosis/termly/pkg/region"
	"github.com/mattn/go-runewidth"
)

// Frame sets for the built-in spinner styles, one frame per rune.
const (
	LineFrames    = `-\|/`
	BrailleFrames = "⣾⣽⣻⢿⡿⣟⣯⣷"
	ClockFrames   = "╷┐╴┘╵└╶┌"
)

// DefaultSpinnerStyle is used when neither Style nor Frames is set.
const DefaultSpinnerStyle = "line"

// SpinnerStyle is a named frame set and its suggested frame interval.
type SpinnerStyle struct {
	Frames   []string
	Interval time.Duration
}

func runeFrames(s string, interval time.Duration) SpinnerStyle {
	return SpinnerStyle{Frames: ParseFrames(s), Interval: interval}
}

func fromBubbles(s spinner.Spinner) SpinnerStyle {
	frames := make([]string, len(s.Frames))
	for i, f := range s.Frames {
		frames[i] = strings.TrimRight(f, " ")
	}
	return SpinnerStyle{Frames: frames, Interval: s.FPS}
}

// SpinnerStyles holds the built-in styles by name.
var SpinnerStyles = map[string]SpinnerStyle{
	"line":      runeFrames(LineFrames, 100*time.Millisecond),
	"braille":   runeFrames(BrailleFrames, 80*time.Millisecond),
	"clock":     runeFrames(ClockFrames, 100*time.Millisecond),
	"dot":       fromBubbles(spinner.Dot),
	"minidot":   fromBubbles(spinner.MiniDot),
	"jump":      fromBubbles(spinner.Jump),
	"pulse":     fromBubbles(spinner.Pulse),
	"points":    fromBubbles(spinner.Points),
	"meter":     fromBubbles(spinner.Meter),
	"hamburger": fromBubbles(spinner.Hamburger),
	"ellipsis":  fromBubbles(spinner.Ellipsis),
	"globe":     fromBubbles(spinner.Globe),
	"moon":      fromBubbles(spinner.Moon),
}

// StyleNames returns the built-in style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(SpinnerStyles))
	for name := range SpinnerStyles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseFrames parses a custom frame string. Space-separated input yields one
// frame per field; otherwise every rune is a frame.
func ParseFrames(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Contains(s, " ") {
		return strings.Fields(s)
	}
	var frames []string
	for _, r := range s {
		frames = append(frames, string(r))
	}
	return frames
}

// SpinnerConfig configures a Spinner.
type SpinnerConfig struct {
	Style  string   // a SpinnerStyles name; unknown names fall back to the default
	Frames []string // custom frames, override Style if provided
	Done   string   // painted on Close; blank means erase
	Margin Margin
}

// Spinner is an indeterminate progress indicator. It hides the cursor while
// it is live and paints its first frame as soon as it is created.
type Spinner struct {
	r        *region.Region
	frames   []string
	done     string
	interval time.Duration
	pos      atomic.Int64
}

// NewSpinner opens a spinner at the cursor.
func NewSpinner(reg *region.Registry, cfg SpinnerConfig) (*Spinner, error) {
	// Priority: Frames > Style > default
	style, ok := SpinnerStyles[cfg.Style]
	if !ok {
		style = SpinnerStyles[DefaultSpinnerStyle]
	}
	if len(cfg.Frames) > 0 {
		style.Frames = cfg.Frames
	}

	width := runewidth.StringWidth(cfg.Done)
	for _, f := range style.Frames {
		width = max(width, runewidth.StringWidth(f))
	}
	s := &Spinner{
		frames:   make([]string, len(style.Frames)),
		interval: style.Interval,
	}
	for i, f := range style.Frames {
		s.frames[i] = runewidth.FillRight(f, width)
	}
	if strings.TrimSpace(cfg.Done) != "" {
		s.done = runewidth.FillRight(cfg.Done, width)
	}
	if s.interval <= 0 {
		s.interval = 100 * time.Millisecond
	}

	r, err := open(reg, region.RegionConfig{
		MarginLeft:  cfg.Margin.Left,
		MarginRight: cfg.Margin.Right,
		MaxWidth:    width,
		HideCursor:  true,
	})
	if err != nil {
		return nil, err
	}
	s.r = r
	if err := s.Report(0); err != nil {
		_ = r.Close()
		return nil, err
	}
	return s, nil
}

// Frame returns the frame shown for v. Any int is valid, negative ones
// included.
func (s *Spinner) Frame(v int) string {
	n := len(s.frames)
	return s.frames[((v%n)+n)%n]
}

// Report shows the frame for v and makes v the current position.
func (s *Spinner) Report(v int) error {
	s.pos.Store(int64(v))
	return s.r.Update(region.Repaint, paintString(s.Frame(v)))
}

// Spin advances to the next frame.
func (s *Spinner) Spin() error {
	v := s.pos.Add(1)
	return s.r.Update(region.Repaint, paintString(s.Frame(int(v))))
}

// Interval is the suggested time between frames for the spinner's style.
func (s *Spinner) Interval() time.Duration {
	return s.interval
}

// Animate spins at the style's interval until ctx is done. It returns nil on
// cancellation and the first terminal error otherwise.
func (s *Spinner) Animate(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Spin(); err != nil {
				return err
			}
		}
	}
}

// Region returns the underlying region.
func (s *Spinner) Region() *region.Region {
	return s.r
}

// Close paints the done glyph if one was configured and erases the spinner
// otherwise. The cursor is restored either way.
func (s *Spinner) Close() error {
	if s.done != "" {
		return s.r.CloseWith(paintString(s.done))
	}
	return s.r.Close()
}
