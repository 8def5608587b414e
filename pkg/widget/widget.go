// Package widget provides live terminal widgets built on regions: a status
// line, a progress bar, a spinner and a stopwatch.
//
// Every widget owns one region opened on the registry passed to its
// constructor, at the cursor position current at construction. Widgets on
// the same row pack left to right. Close disposes the widget exactly once;
// further calls are no-ops.
package widget

import (
	"errors"
	"io"

	"github.com/dkoosis/termly/pkg/region"
)

// ErrNoRegistry is returned by constructors given a nil registry.
var ErrNoRegistry = errors.New("widget: nil registry")

// Margin is the blank space kept on each side of a widget.
type Margin struct {
	Left, Right int
}

func (m *Margin) or(def Margin) Margin {
	if m == nil {
		return def
	}
	return *m
}

func open(reg *region.Registry, rc region.RegionConfig) (*region.Region, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	return reg.Open(rc)
}

func paintString(s string) region.PaintFunc {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}
