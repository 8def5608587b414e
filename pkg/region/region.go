package region

import (
	"io"
)

// Mode selects how much an update erases before painting.
type Mode int

const (
	// Repaint paints over the content span without blanking it first. Use
	// it for widgets whose output always fills MaxWidth.
	Repaint Mode = iota
	// Clear blanks the content span before painting. Use it for content of
	// varying width.
	Clear
)

// PaintFunc writes a region's content. The cursor is at the first content
// cell when it is called.
type PaintFunc func(w io.Writer) error

// RegionConfig describes a region to open.
type RegionConfig struct {
	MarginLeft  int
	MarginRight int

	// MaxWidth is the widest content the region will paint. Regions with
	// variable content start narrow and grow with Widen.
	MaxWidth int

	// HideCursor hides the terminal cursor while the region is live.
	HideCursor bool
}

// Region is a live, in-place repainted span of one terminal row.
//
// Its lifecycle is open, any number of updates, then exactly one dispose
// (Close, CloseWith or Detach). Further disposes and updates after dispose
// are no-ops. A disabled region never touches the terminal.
//
// All fields are guarded by the registry lock.
type Region struct {
	reg       *Registry
	row, col  int
	geom      Geometry
	enabled   bool
	closed    bool
	hidCursor bool
}

// NewRegion returns an unregistered, disabled region. Registry.Open is the
// usual way to get a region; NewRegion exists for Registry.Register.
func NewRegion(rc RegionConfig) *Region {
	return &Region{geom: NewGeometry(rc.MarginLeft, rc.MaxWidth, rc.MarginRight)}
}

// Row returns the terminal row captured at registration.
func (r *Region) Row() int {
	return r.row
}

// Col returns the column assigned at registration.
func (r *Region) Col() int {
	return r.col
}

// Geometry returns the current geometry.
func (r *Region) Geometry() Geometry {
	if r.reg == nil {
		return r.geom
	}
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	return r.geom
}

// Enabled reports whether the region draws on the terminal.
func (r *Region) Enabled() bool {
	if r.reg == nil {
		return false
	}
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	return r.enabled
}

// Closed reports whether the region has been disposed.
func (r *Region) Closed() bool {
	if r.reg == nil {
		return r.closed
	}
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	return r.closed
}

// Widen grows the content span to at least width cells. Call it before the
// update that paints wider content so the erase covers what was there.
func (r *Region) Widen(width int) {
	if r.reg == nil {
		r.geom = r.geom.Widen(width)
		return
	}
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	r.geom = r.geom.Widen(width)
}

// Update repositions to the region, erases according to mode and the
// registry's margin policy, and calls paint with the cursor at the first
// content cell. The cursor is left wherever paint leaves it.
func (r *Region) Update(mode Mode, paint PaintFunc) error {
	g := r.reg
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !r.enabled || r.closed {
		return nil
	}
	return r.drawLocked(mode, paint)
}

// Close erases the whole footprint, restores the cursor if this region hid
// it, and deregisters. It is safe to call more than once and from any
// goroutine. The region is deregistered even when the erase fails.
func (r *Region) Close() error {
	return r.dispose(func() error { return r.eraseLocked(EraseAll) })
}

// CloseWith disposes the region painting final content instead of erasing.
func (r *Region) CloseWith(paint PaintFunc) error {
	return r.dispose(func() error { return r.drawLocked(Repaint, paint) })
}

// Detach disposes the region leaving its last content on screen.
func (r *Region) Detach() error {
	return r.dispose(nil)
}

func (r *Region) dispose(final func() error) error {
	g := r.reg
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !r.enabled || r.closed {
		return nil
	}
	r.closed = true
	defer g.removeLocked(r)

	var err error
	if final != nil {
		err = final()
	}
	if r.hidCursor {
		r.hidCursor = false
		if serr := g.showLocked(); err == nil {
			err = serr
		}
	}
	g.log.Printf("region: closed at row %d col %d", r.row, r.col)
	return err
}

// drawLocked implements Update. Caller holds the registry lock.
func (r *Region) drawLocked(mode Mode, paint PaintFunc) error {
	t := r.reg.term
	if mode == Clear || r.reg.cfg.Margins == MarginsAlways {
		if err := r.blankSpans(mode == Clear); err != nil {
			return err
		}
	}
	if err := t.MoveTo(r.row, r.col+r.geom.MarginLeft); err != nil {
		return err
	}
	if paint == nil {
		return nil
	}
	return paint(t)
}

// blankSpans blanks both margins and, if content is set, the content span
// between them. Caller holds the registry lock.
func (r *Region) blankSpans(content bool) error {
	t := r.reg.term
	if err := t.MoveTo(r.row, r.col); err != nil {
		return err
	}
	if content {
		return t.Blank(r.geom.EraseWidth(EraseAll))
	}
	if err := t.Blank(r.geom.MarginLeft); err != nil {
		return err
	}
	if err := t.MoveTo(r.row, r.col+r.geom.MarginLeft+r.geom.MaxWidth); err != nil {
		return err
	}
	return t.Blank(r.geom.MarginRight)
}

// eraseLocked blanks the given scope. Caller holds the registry lock.
func (r *Region) eraseLocked(scope EraseScope) error {
	col := r.col
	if scope == EraseContent {
		col += r.geom.MarginLeft
	}
	if err := r.reg.term.MoveTo(r.row, col); err != nil {
		return err
	}
	return r.reg.term.Blank(r.geom.EraseWidth(scope))
}

// Erase blanks the region without disposing it.
func (r *Region) Erase(scope EraseScope) error {
	g := r.reg
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !r.enabled || r.closed {
		return nil
	}
	return r.eraseLocked(scope)
}

// Use runs fn and closes c on every exit path, including panics. The close
// error is returned when fn succeeds.
func Use(c io.Closer, fn func() error) (err error) {
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()
	return fn()
}
