// Package region implements live terminal regions.
//
// A Region is a single-row span of the terminal owned by one widget and
// repainted in place. Regions created on the same row are packed left to
// right so they never overlap. Every terminal operation of every region that
// shares a Registry is serialized through the registry's single mutex: the
// physical cursor is process-wide state, and packing a new region requires
// observing all live regions at once.
package region

import (
	"io"
	"log"
	"slices"
	"sync"

	"github.com/dkoosis/termly/pkg/cursor"
)

// Config controls a Registry.
type Config struct {
	// Pack selects where a region lands when it has no same-row neighbor.
	Pack PackPolicy

	// Margins selects when margins are re-blanked.
	Margins MarginPolicy

	// Interactive reports whether the output stream is a real terminal. It
	// is consulted once per region, at creation. Nil means interactive.
	Interactive func() bool

	// Debug receives diagnostics. Nil discards them.
	Debug *log.Logger
}

// Registry tracks the live regions drawn on one terminal and owns the lock
// guarding it.
type Registry struct {
	mu      sync.Mutex
	term    cursor.Terminal
	cfg     Config
	log     *log.Logger
	regions []*Region
	hidden  int // regions currently holding the cursor hidden
}

// NewRegistry returns an empty registry drawing on t.
func NewRegistry(t cursor.Terminal, cfg Config) *Registry {
	logger := cfg.Debug
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Registry{term: t, cfg: cfg, log: logger}
}

// Terminal returns the terminal the registry draws on.
func (g *Registry) Terminal() cursor.Terminal {
	return g.term
}

// Config returns the registry configuration.
func (g *Registry) Config() Config {
	return g.cfg
}

// Open creates a region at the current cursor position, packed after any
// live region already on that row. Reading the cursor and registering
// happen in one critical section, so regions opened concurrently never
// observe the same rightmost neighbor.
//
// A region on a non-interactive stream, or one whose cursor position cannot
// be read, is returned disabled: all of its operations are no-ops. The only
// error is a device failure while hiding the cursor.
func (g *Registry) Open(rc RegionConfig) (*Region, error) {
	r := NewRegion(rc)
	r.reg = g

	if g.cfg.Interactive != nil && !g.cfg.Interactive() {
		g.log.Printf("region: stream is not interactive, region disabled")
		return r, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	row, col, err := g.term.Position()
	if err != nil {
		g.log.Printf("region: %v, region disabled", err)
		return r, nil
	}
	g.registerLocked(row, col, r)

	if rc.HideCursor {
		if err := g.hideLocked(); err != nil {
			r.closed = true
			g.removeLocked(r)
			return nil, err
		}
		r.hidCursor = true
	}
	g.log.Printf("region: opened at row %d col %d footprint %d", r.row, r.col, r.geom.Footprint())
	return r, nil
}

// Register places r on candidateRow and appends it to the registry. If a
// live region already occupies that row, r starts where the region with the
// greatest right edge ends and candidateCol is ignored; otherwise the pack
// policy applies to candidateCol. It returns the column assigned to r.
//
// Register is for callers that track the cursor themselves; Open reads it
// from the terminal. r must not be shared with other goroutines until
// Register returns.
func (g *Registry) Register(candidateRow, candidateCol int, r *Region) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	r.reg = g
	return g.registerLocked(candidateRow, candidateCol, r)
}

// Deregister removes r. Removing a region that is not registered is a
// no-op. It does not touch the terminal; see Region.Close.
func (g *Registry) Deregister(r *Region) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeLocked(r)
}

// Write sends p to the terminal under the registry lock, so output outside
// any region never interleaves with a region update. Nothing is written when
// the stream is not interactive.
func (g *Registry) Write(p []byte) (int, error) {
	if g.cfg.Interactive != nil && !g.cfg.Interactive() {
		return len(p), nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.term.Write(p)
}

// Len returns the number of live regions.
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.regions)
}

// Regions returns a snapshot of the live regions in registration order.
func (g *Registry) Regions() []*Region {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.regions)
}

// registerLocked implements Register. Caller holds g.mu.
func (g *Registry) registerLocked(row, col int, r *Region) int {
	if r.closed || slices.Contains(g.regions, r) {
		return r.col
	}
	edge, found := 0, false
	for _, o := range g.regions {
		if o.row != row {
			continue
		}
		if end := o.col + o.geom.Footprint(); !found || end > edge {
			edge, found = end, true
		}
	}
	switch {
	case found:
		col = edge
	case g.cfg.Pack == PackLeftmost:
		col = 0
	}

	r.row, r.col = row, max(col, 0)
	r.enabled = true
	g.regions = append(g.regions, r)
	return r.col
}

// removeLocked deletes r from the list. Caller holds g.mu.
func (g *Registry) removeLocked(r *Region) {
	if i := slices.Index(g.regions, r); i >= 0 {
		g.regions = slices.Delete(g.regions, i, i+1)
	}
}

// hideLocked hides the cursor for the first hiding region. Caller holds g.mu.
func (g *Registry) hideLocked() error {
	if g.hidden == 0 {
		if err := g.term.SetCursorVisible(false); err != nil {
			return err
		}
	}
	g.hidden++
	return nil
}

// showLocked shows the cursor once the last hiding region is gone. Caller
// holds g.mu.
func (g *Registry) showLocked() error {
	if g.hidden == 0 {
		return nil
	}
	g.hidden--
	if g.hidden == 0 {
		return g.term.SetCursorVisible(true)
	}
	return nil
}
