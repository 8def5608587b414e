// Package color wraps text in 16-color ANSI styling.
//
// Styles are rendered through a lipgloss renderer pinned to the basic ANSI
// profile, so the sequences are the same on every terminal that honors
// SGR 30-37/90-97. Output is plain text when color is disabled, which is
// the default when NO_COLOR is set or neither stdout nor stderr is a
// terminal.
package color

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/dkoosis/termly/internal/detect"
	"github.com/muesli/termenv"
)

// Color is one of the 16 standard terminal colors, or None.
type Color int

// None means "no color": the terminal default is kept.
const None Color = -1

// The 16 ANSI colors in SGR order.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var names = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (c Color) String() string {
	if c == None {
		return "none"
	}
	if c.valid() {
		return names[c]
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) valid() bool {
	return c >= Black && c <= BrightWhite
}

// Parse returns the color with the given name, e.g. "red" or "bright-blue".
// Underscores and spaces are accepted in place of the hyphen.
func Parse(name string) (Color, error) {
	n := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
	if n == "" || n == "none" {
		return None, nil
	}
	for i, s := range names {
		if s == n {
			return Color(i), nil
		}
	}
	return None, fmt.Errorf("unknown color %q", name)
}

// renderer is pinned to the 16-color profile regardless of the environment.
var renderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}()

var (
	enabledOnce sync.Once
	enabled     atomic.Bool
)

// Enabled reports whether Colorize emits escape sequences.
func Enabled() bool {
	enabledOnce.Do(func() { enabled.Store(detect.ColorSupported()) })
	return enabled.Load()
}

// SetEnabled overrides color detection for the whole process.
func SetEnabled(on bool) {
	enabledOnce.Do(func() {})
	enabled.Store(on)
}

// Colorize wraps text in start and reset sequences for fg and bg. Either may
// be None. Empty text and disabled color return text unchanged.
func Colorize(text string, fg, bg Color) string {
	if text == "" || !Enabled() {
		return text
	}
	style := renderer.NewStyle()
	styled := false
	if fg.valid() {
		style = style.Foreground(lipgloss.ANSIColor(fg))
		styled = true
	}
	if bg.valid() {
		style = style.Background(lipgloss.ANSIColor(bg))
		styled = true
	}
	if !styled {
		return text
	}
	return style.Render(text)
}

// Sprintf formats according to format and colors the result with fg.
func Sprintf(fg Color, format string, args ...any) string {
	return Colorize(fmt.Sprintf(format, args...), fg, None)
}
