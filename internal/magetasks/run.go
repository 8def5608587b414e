package magetasks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dkoosis/termly/pkg/color"
	"github.com/dkoosis/termly/pkg/region"
	"github.com/dkoosis/termly/pkg/widget"
	"github.com/dkoosis/termly/termly"
	"github.com/magefile/mage/sh"
)

// Runner runs commands behind a spinner and a status line.
type Runner struct {
	Registry *region.Registry
	Out      io.Writer // receives captured output of failed steps
	Env      map[string]string
}

// DefaultRunner paints on stderr.
func DefaultRunner() *Runner {
	return &Runner{Registry: termly.Stderr(), Out: os.Stderr}
}

// Run runs a step with the default runner.
func Run(label, cmd string, args ...string) error {
	return DefaultRunner().Run(label, cmd, args...)
}

// Run executes cmd while a spinner turns next to label. The spinner ends
// in a check mark or a cross; on failure the captured output is copied to
// r.Out. Off a terminal only the final line is printed, to r.Out.
func (r *Runner) Run(label, cmd string, args ...string) error {
	sp, err := widget.NewSpinner(r.Registry, widget.SpinnerConfig{Style: "dot"})
	if err != nil {
		return err
	}
	st, err := widget.NewStatus(r.Registry, widget.StatusConfig{})
	if err != nil {
		_ = sp.Close()
		return err
	}

	var captured bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, err := sh.Exec(r.Env, &captured, &captured, cmd, args...)
		done <- err
	}()

	ticker := time.NewTicker(sp.Interval())
	defer ticker.Stop()
	paintErr := st.Write(label)
	for paintErr == nil {
		select {
		case runErr := <-done:
			return r.finish(sp, st, label, runErr, &captured)
		case <-ticker.C:
			paintErr = sp.Spin()
		}
	}
	// The terminal went away; still wait for the command.
	runErr := <-done
	_ = sp.Close()
	_ = st.Close()
	return errors.Join(paintErr, runErr)
}

func (r *Runner) finish(sp *widget.Spinner, st *widget.Status, label string, runErr error, captured *bytes.Buffer) error {
	fg, glyph := color.Green, "✓"
	if runErr != nil {
		fg, glyph = color.Red, "✗"
	}
	mark := color.Colorize(glyph, fg, color.None)
	errs := []error{
		sp.Region().CloseWith(func(w io.Writer) error {
			_, err := io.WriteString(w, mark)
			return err
		}),
		st.Close(),
	}
	if sp.Region().Enabled() {
		_, err := fmt.Fprintln(r.Registry)
		errs = append(errs, err)
	} else {
		fmt.Fprintf(r.Out, "%s %s\n", mark, label)
	}

	if runErr != nil {
		if out := strings.TrimSpace(captured.String()); out != "" {
			fmt.Fprintln(r.Out, out)
		}
		return fmt.Errorf("%s: %w", label, runErr)
	}
	return errors.Join(errs...)
}

// IsCommandNotFound reports whether err means the executable is missing.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") || strings.Contains(msg, "no such file or directory")
}
