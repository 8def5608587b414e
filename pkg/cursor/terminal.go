// Package cursor owns the physical terminal cursor.
//
// A Terminal is the only thing allowed to move the cursor, blank cells or
// toggle cursor visibility. Callers that share one terminal between several
// live regions must serialize access themselves (see package region).
package cursor

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrDeviceLost wraps every write failure. There is no recovery for a
// terminal that disappears mid-run, so callers should not retry.
var ErrDeviceLost = errors.New("terminal device lost")

// ErrNoPosition is returned when the cursor position cannot be read.
var ErrNoPosition = errors.New("cursor position unavailable")

// Terminal abstracts the cursor operations live regions need.
// Coordinates are 0-based.
type Terminal interface {
	io.Writer

	// Position reads the physical cursor.
	Position() (row, col int, err error)

	// MoveTo positions the cursor absolutely.
	MoveTo(row, col int) error

	// Blank writes width spaces from the current column. The cursor ends
	// after the blanked span.
	Blank(width int) error

	// SetCursorVisible shows or hides the cursor.
	SetCursorVisible(visible bool) error
}

// ANSI escape sequences used by the ANSI terminal.
const (
	csiMoveTo     = "\x1b[%d;%dH" // row;col, 1-based
	csiHideCursor = "\x1b[?25l"
	csiShowCursor = "\x1b[?25h"
	csiQueryPos   = "\x1b[6n"
)

// blankChunk bounds the size of a single blanking write.
const blankChunk = 80

var spaces = strings.Repeat(" ", blankChunk)

// PositionFunc reads the physical cursor position (0-based).
type PositionFunc func() (row, col int, err error)

// ANSI drives a VT100-compatible terminal through escape sequences.
type ANSI struct {
	out      io.Writer
	position PositionFunc
}

// NewANSI returns a terminal writing to out. The cursor position is queried
// on the controlling tty.
func NewANSI(out io.Writer) *ANSI {
	return &ANSI{out: out, position: QueryPosition}
}

// NewANSIWithQuery is NewANSI with a custom position source.
func NewANSIWithQuery(out io.Writer, position PositionFunc) *ANSI {
	return &ANSI{out: out, position: position}
}

// Position implements Terminal.
func (a *ANSI) Position() (int, int, error) {
	if a.position == nil {
		return 0, 0, ErrNoPosition
	}
	return a.position()
}

// MoveTo implements Terminal.
func (a *ANSI) MoveTo(row, col int) error {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return a.writeString(fmt.Sprintf(csiMoveTo, row+1, col+1))
}

// Blank implements Terminal. Widths larger than the chunk size are written
// in several pieces.
func (a *ANSI) Blank(width int) error {
	for width > 0 {
		n := min(width, blankChunk)
		if err := a.writeString(spaces[:n]); err != nil {
			return err
		}
		width -= n
	}
	return nil
}

// SetCursorVisible implements Terminal.
func (a *ANSI) SetCursorVisible(visible bool) error {
	if visible {
		return a.writeString(csiShowCursor)
	}
	return a.writeString(csiHideCursor)
}

// Write implements io.Writer.
func (a *ANSI) Write(p []byte) (int, error) {
	n, err := a.out.Write(p)
	if err != nil {
		return n, deviceErr(err)
	}
	return n, nil
}

func (a *ANSI) writeString(s string) error {
	if _, err := io.WriteString(a.out, s); err != nil {
		return deviceErr(err)
	}
	return nil
}

func deviceErr(err error) error {
	if errors.Is(err, ErrDeviceLost) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDeviceLost, err)
}

// HideCursor hides the cursor and returns a function restoring it.
// The restore function is safe to call more than once; only the first call
// writes.
func HideCursor(t Terminal) (restore func() error, err error) {
	if err := t.SetCursorVisible(false); err != nil {
		return func() error { return nil }, err
	}
	var once sync.Once
	return func() error {
		var rerr error
		once.Do(func() { rerr = t.SetCursorVisible(true) })
		return rerr
	}, nil
}

// parseReport extracts the position from a DSR reply (ESC [ row ; col R).
// Bytes before the last CSI are ignored, so type-ahead does not confuse it.
func parseReport(b []byte) (row, col int, err error) {
	s := string(b)
	i := strings.LastIndex(s, "\x1b[")
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: no report in %q", ErrNoPosition, s)
	}
	body := s[i+2:]
	end := strings.IndexByte(body, 'R')
	if end < 0 {
		return 0, 0, fmt.Errorf("%w: unterminated report %q", ErrNoPosition, s)
	}
	r, c, ok := strings.Cut(body[:end], ";")
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed report %q", ErrNoPosition, s)
	}
	row, err = strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad row: %w", ErrNoPosition, err)
	}
	col, err = strconv.Atoi(c)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad column: %w", ErrNoPosition, err)
	}
	if row < 1 || col < 1 {
		return 0, 0, fmt.Errorf("%w: out of range report %q", ErrNoPosition, s)
	}
	return row - 1, col - 1, nil
}
