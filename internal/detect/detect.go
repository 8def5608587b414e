// Package detect reports what the output streams are capable of.
package detect

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Fallback terminal size used when the stream is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fder is satisfied by *os.File and by wrappers that expose the descriptor.
type fder interface {
	Fd() uintptr
}

// IsInteractive reports whether w is a terminal, including Cygwin and MSYS
// ptys. Anything that is not backed by a file descriptor is not interactive.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NoColorRequested reports whether NO_COLOR is set to a non-empty value.
// See https://no-color.org.
func NoColorRequested() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ColorSupported reports whether color output should be on by default:
// NO_COLOR is unset and stdout or stderr is a terminal.
func ColorSupported() bool {
	if NoColorRequested() {
		return false
	}
	return IsInteractive(os.Stdout) || IsInteractive(os.Stderr)
}

// TermSize returns the terminal dimensions for w, defaulting to 80x24.
func TermSize(w io.Writer) (width, height int) {
	width, height = DefaultWidth, DefaultHeight
	f, ok := w.(fder)
	if !ok {
		return width, height
	}
	if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
		if tw > 0 {
			width = tw
		}
		if th > 0 {
			height = th
		}
	}
	return width, height
}
