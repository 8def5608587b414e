package widget

import (
	"context"
	"sync"
	"time"

	"github.com/dkoosis/termly/pkg/region"
	"github.com/mattn/go-runewidth"
)

// Stopwatch defaults.
const (
	DefaultStopwatchFormat     = "mm:ss"
	DefaultStopwatchResolution = time.Second
)

// DefaultStopwatchMargin separates a stopwatch from its neighbors.
var DefaultStopwatchMargin = Margin{Left: 1, Right: 1}

// StopwatchConfig configures a Stopwatch.
type StopwatchConfig struct {
	Format     string        // FormatDuration layout, default DefaultStopwatchFormat
	Resolution time.Duration // repaint interval, default DefaultStopwatchResolution
	Margin     *Margin       // nil means DefaultStopwatchMargin

	now func() time.Time
}

// Stopwatch shows elapsed time, repainted from a background goroutine while
// it runs. It is created stopped at zero, and paints nothing until started
// or reset.
type Stopwatch struct {
	r          *region.Region
	layout     string
	resolution time.Duration
	now        func() time.Time

	mu      sync.Mutex
	running bool
	closed  bool
	started time.Time
	elapsed time.Duration // accumulated before the current run
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
}

// NewStopwatch opens a stopwatch at the cursor.
func NewStopwatch(reg *region.Registry, cfg StopwatchConfig) (*Stopwatch, error) {
	s := &Stopwatch{
		layout:     cfg.Format,
		resolution: cfg.Resolution,
		now:        cfg.now,
	}
	if s.layout == "" {
		s.layout = DefaultStopwatchFormat
	}
	if s.resolution <= 0 {
		s.resolution = DefaultStopwatchResolution
	}
	if s.now == nil {
		s.now = time.Now
	}
	m := cfg.Margin.or(DefaultStopwatchMargin)

	r, err := open(reg, region.RegionConfig{
		MarginLeft:  m.Left,
		MarginRight: m.Right,
		MaxWidth:    runewidth.StringWidth(FormatDuration(0, s.layout)),
	})
	if err != nil {
		return nil, err
	}
	s.r = r
	return s, nil
}

// Start starts or resumes timing. Starting a running or closed stopwatch
// is a no-op.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.closed {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.started = s.now()
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

// Stop pauses timing, waits for the repaint goroutine to exit and paints
// the stopped time.
func (s *Stopwatch) Stop() error {
	if !s.halt() {
		return nil
	}
	return s.paint()
}

// halt stops the goroutine and reports whether it was running.
func (s *Stopwatch) halt() bool {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return false
	}
	s.running = false
	s.elapsed += s.now().Sub(s.started)
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done // never wait while holding s.mu; run needs it to read Elapsed
	return true
}

// Reset stops timing and shows zero.
func (s *Stopwatch) Reset() error {
	s.halt()
	s.mu.Lock()
	s.elapsed = 0
	s.mu.Unlock()
	return s.paint()
}

// Restart resets to zero and starts timing.
func (s *Stopwatch) Restart() error {
	err := s.Reset()
	s.Start()
	return err
}

// Elapsed returns the total time the stopwatch has been running.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return s.elapsed + s.now().Sub(s.started)
	}
	return s.elapsed
}

// Running reports whether the stopwatch is timing.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Err returns the terminal error that stopped background repainting, if any.
func (s *Stopwatch) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Region returns the underlying region.
func (s *Stopwatch) Region() *region.Region {
	return s.r
}

// Close stops timing and erases the stopwatch.
func (s *Stopwatch) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.halt()
	return s.r.Close()
}

func (s *Stopwatch) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.resolution)
	defer ticker.Stop()

	for {
		if err := s.paint(); err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Stopwatch) paint() error {
	text := FormatDuration(s.Elapsed(), s.layout)
	w := runewidth.StringWidth(text)
	s.r.Widen(w)
	return s.r.Update(region.Repaint, paintString(runewidth.FillRight(text, s.r.Geometry().MaxWidth)))
}
