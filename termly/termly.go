// Package termly draws live, in-place updating widgets on the standard
// streams: status lines, progress bars, spinners and stopwatches that share
// terminal rows without corrupting each other.
//
// Each stream has one registry, created on first use. Widgets opened through
// this package go to stderr:
//
//	sp, _ := termly.NewSpinner(widget.SpinnerConfig{Style: "braille", Done: "✓"})
//	defer sp.Close()
//
// When the stream is not a terminal every widget is silently disabled.
package termly

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/dkoosis/termly/internal/config"
	"github.com/dkoosis/termly/internal/detect"
	"github.com/dkoosis/termly/pkg/color"
	"github.com/dkoosis/termly/pkg/cursor"
	"github.com/dkoosis/termly/pkg/region"
)

// ErrAlreadyInitialized is returned by Setup after a default registry was created.
var ErrAlreadyInitialized = errors.New("termly: default registries already in use")

// Options configures a registry.
type Options struct {
	Pack    region.PackPolicy
	Margins region.MarginPolicy
	NoColor bool
	Debug   *log.Logger // nil discards diagnostics
}

// NewRegistry returns a registry drawing on w. Regions are disabled unless w
// is a terminal.
func NewRegistry(w io.Writer, opts Options) *region.Registry {
	return region.NewRegistry(cursor.NewANSI(w), region.Config{
		Pack:        opts.Pack,
		Margins:     opts.Margins,
		Interactive: func() bool { return detect.IsInteractive(w) },
		Debug:       opts.Debug,
	})
}

var (
	mu       sync.Mutex
	defaults Options
	stderr   *region.Registry
	stdout   *region.Registry
)

// Setup sets the options for the default registries. It must be called
// before the first call to Stderr, Stdout or a widget constructor of this
// package.
func Setup(opts Options) error {
	mu.Lock()
	defer mu.Unlock()
	if stderr != nil || stdout != nil {
		return ErrAlreadyInitialized
	}
	defaults = opts
	if opts.NoColor {
		color.SetEnabled(false)
	}
	return nil
}

// Stderr returns the registry for os.Stderr.
func Stderr() *region.Registry {
	mu.Lock()
	defer mu.Unlock()
	if stderr == nil {
		stderr = NewRegistry(os.Stderr, defaults)
	}
	return stderr
}

// Stdout returns the registry for os.Stdout.
func Stdout() *region.Registry {
	mu.Lock()
	defer mu.Unlock()
	if stdout == nil {
		stdout = NewRegistry(os.Stdout, defaults)
	}
	return stdout
}

// Stream returns the registry for a stream name, "stderr" or "stdout".
func Stream(name string) (*region.Registry, error) {
	switch name {
	case "", "stderr":
		return Stderr(), nil
	case "stdout":
		return Stdout(), nil
	default:
		return nil, fmt.Errorf("unknown stream %q", name)
	}
}

// OptionsFromConfig converts resolved configuration to Options. If the
// config names a debug log, it is opened for appending and returned as the
// closer; otherwise the closer is a no-op.
func OptionsFromConfig(rc *config.ResolvedConfig) (Options, io.Closer, error) {
	opts := Options{
		Pack:    rc.Pack,
		Margins: rc.Margins,
		NoColor: rc.NoColor,
	}
	if rc.DebugLog == "" {
		return opts, nopCloser{}, nil
	}
	f, err := os.OpenFile(rc.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Options{}, nil, fmt.Errorf("opening debug log: %w", err)
	}
	opts.Debug = log.New(f, "termly: ", log.LstdFlags|log.Lmicroseconds)
	return opts, f, nil
}

// SetupFromEnv resolves configuration from the environment and
// .termly.yaml and applies it with Setup. Close the returned closer when the
// program exits to flush the debug log.
func SetupFromEnv() (io.Closer, error) {
	rc, err := config.ResolveConfig(config.CliFlags{})
	if err != nil {
		return nil, err
	}
	opts, closer, err := OptionsFromConfig(rc)
	if err != nil {
		return nil, err
	}
	if err := Setup(opts); err != nil {
		_ = closer.Close()
		return nil, err
	}
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
