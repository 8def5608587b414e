package termly

import "github.com/dkoosis/termly/pkg/widget"

// NewStatus opens a status line on stderr.
func NewStatus(cfg widget.StatusConfig) (*widget.Status, error) {
	return widget.NewStatus(Stderr(), cfg)
}

// NewBar opens a progress bar on stderr.
func NewBar(cfg widget.BarConfig) (*widget.Bar, error) {
	return widget.NewBar(Stderr(), cfg)
}

// NewSpinner opens a spinner on stderr.
func NewSpinner(cfg widget.SpinnerConfig) (*widget.Spinner, error) {
	return widget.NewSpinner(Stderr(), cfg)
}

// NewStopwatch opens a stopwatch on stderr.
func NewStopwatch(cfg widget.StopwatchConfig) (*widget.Stopwatch, error) {
	return widget.NewStopwatch(Stderr(), cfg)
}
