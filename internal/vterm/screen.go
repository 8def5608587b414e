// Package vterm is an in-memory terminal used to test live regions.
//
// Screen implements cursor.Terminal over a sparse grid of cells and records
// every operation, so tests can replay the exact erase/paint stream a region
// produced and inspect what is left on screen.
package vterm

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dkoosis/termly/pkg/cursor"
)

var _ cursor.Terminal = (*Screen)(nil)

// tabWidth is the distance between default terminal tab stops.
const tabWidth = 8

// OpKind identifies a recorded terminal operation.
type OpKind int

const (
	OpPosition OpKind = iota
	OpMove
	OpBlank
	OpWrite
	OpCursor
)

func (k OpKind) String() string {
	switch k {
	case OpPosition:
		return "position"
	case OpMove:
		return "move"
	case OpBlank:
		return "blank"
	case OpWrite:
		return "write"
	case OpCursor:
		return "cursor"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one recorded terminal operation.
type Op struct {
	Kind    OpKind
	Row     int
	Col     int
	Width   int
	Text    string
	Visible bool
}

// Screen is a mock terminal. Every cell is one rune; escape sequences and
// line breaks in written text are consumed without occupying cells.
type Screen struct {
	mu       sync.Mutex
	rows     map[int][]rune
	row, col int
	visible  bool
	ops      []Op
	writeErr error
	posErr   error

	busy     atomic.Bool
	overlaps atomic.Int64
}

// New returns a blank screen with the cursor at the origin, visible.
func New() *Screen {
	return &Screen{rows: make(map[int][]rune), visible: true}
}

// SetCursor moves the cursor without recording an operation.
func (s *Screen) SetCursor(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.row, s.col = row, col
}

// Print writes text at the cursor without recording an operation. It
// stands in for output produced outside any live region.
func (s *Screen) Print(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(text)
}

// FailWrites makes every subsequent output operation fail with err wrapped
// in cursor.ErrDeviceLost. A nil err restores normal behavior.
func (s *Screen) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// FailPosition makes Position fail with err. A nil err restores it.
func (s *Screen) FailPosition(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posErr = err
}

// Position implements cursor.Terminal.
func (s *Screen) Position() (int, int, error) {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, Op{Kind: OpPosition, Row: s.row, Col: s.col})
	if s.posErr != nil {
		return 0, 0, fmt.Errorf("%w: %w", cursor.ErrNoPosition, s.posErr)
	}
	return s.row, s.col, nil
}

// MoveTo implements cursor.Terminal.
func (s *Screen) MoveTo(row, col int) error {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, Op{Kind: OpMove, Row: row, Col: col})
	if err := s.failure(); err != nil {
		return err
	}
	s.row, s.col = max(row, 0), max(col, 0)
	return nil
}

// Blank implements cursor.Terminal.
func (s *Screen) Blank(width int) error {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, Op{Kind: OpBlank, Row: s.row, Col: s.col, Width: width})
	if err := s.failure(); err != nil {
		return err
	}
	if width > 0 {
		s.put(strings.Repeat(" ", width))
	}
	return nil
}

// SetCursorVisible implements cursor.Terminal.
func (s *Screen) SetCursorVisible(visible bool) error {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, Op{Kind: OpCursor, Visible: visible})
	if err := s.failure(); err != nil {
		return err
	}
	s.visible = visible
	return nil
}

// Write implements io.Writer.
func (s *Screen) Write(p []byte) (int, error) {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, Op{Kind: OpWrite, Row: s.row, Col: s.col, Text: string(p)})
	if err := s.failure(); err != nil {
		return 0, err
	}
	s.put(string(p))
	return len(p), nil
}

// Text returns width cells of row starting at col; unwritten cells read as
// spaces.
func (s *Screen) Text(row, col, width int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := s.rows[row]
	var sb strings.Builder
	for c := col; c < col+width; c++ {
		if c >= 0 && c < len(line) {
			sb.WriteRune(line[c])
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Line returns the written extent of row.
func (s *Screen) Line(row int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.rows[row])
}

// IsBlank reports whether every written cell is a space.
func (s *Screen) IsBlank() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.rows {
		if strings.TrimRight(string(line), " ") != "" {
			return false
		}
	}
	return true
}

// Cursor returns the cursor position.
func (s *Screen) Cursor() (row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.row, s.col
}

// CursorVisible reports the cursor visibility.
func (s *Screen) CursorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Ops returns a copy of the recorded operations.
func (s *Screen) Ops() []Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Op(nil), s.ops...)
}

// OpCount returns the number of recorded operations.
func (s *Screen) OpCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ops)
}

// ResetOps discards the recorded operations.
func (s *Screen) ResetOps() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = nil
}

// Overlaps counts operations that started while another was still running,
// i.e. unserialized terminal access.
func (s *Screen) Overlaps() int64 {
	return s.overlaps.Load()
}

func (s *Screen) enter() func() {
	if !s.busy.CompareAndSwap(false, true) {
		s.overlaps.Add(1)
		return func() {}
	}
	return func() { s.busy.Store(false) }
}

func (s *Screen) failure() error {
	if s.writeErr == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", cursor.ErrDeviceLost, s.writeErr)
}

// put places text at the cursor, skipping CSI escape sequences. A newline
// moves to the start of the next row and a tab to the next tab stop without
// writing cells. Caller holds s.mu.
func (s *Screen) put(text string) {
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[' {
			i += 2
			for i < len(runes) && (runes[i] < 0x40 || runes[i] > 0x7e) {
				i++
			}
			continue
		}
		switch r {
		case '\n':
			s.row, s.col = s.row+1, 0
			continue
		case '\r':
			s.col = 0
			continue
		case '\t':
			s.col = (s.col/tabWidth + 1) * tabWidth
			continue
		}
		line := s.rows[s.row]
		for len(line) <= s.col {
			line = append(line, ' ')
		}
		line[s.col] = r
		s.rows[s.row] = line
		s.col++
	}
}
