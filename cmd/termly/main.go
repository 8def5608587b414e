// termly demonstrates live terminal regions.
//
// Usage:
//
//	termly [flags] [demo]     run the widget demo
//	termly styles             list spinner styles
//	termly version            print build information
//
// Widgets paint on stderr unless --stream stdout is given. When the stream
// is not a terminal the widgets stay silent and only plain text is printed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/termly/internal/config"
	"github.com/dkoosis/termly/internal/detect"
	"github.com/dkoosis/termly/internal/version"
	"github.com/dkoosis/termly/pkg/color"
	"github.com/dkoosis/termly/pkg/region"
	"github.com/dkoosis/termly/pkg/widget"
	"github.com/dkoosis/termly/termly"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("termly", flag.ContinueOnError)
	fs.SetOutput(stderr)
	noColor := fs.Bool("no-color", false, "Disable colors")
	pack := fs.String("pack", "", "Region packing: indent, leftmost")
	margins := fs.String("margins", "", "Margin erasing: always, on-clear")
	streamFlag := fs.String("stream", "", "Stream to paint widgets on: stderr, stdout")
	debugLog := fs.String("debug-log", "", "Write region diagnostics to this file")
	configPath := fs.String("config", "", "Config file (default: .termly.yaml)")
	delay := fs.Duration("delay", 50*time.Millisecond, "Pause between demo steps")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cmd := fs.Arg(0)
	switch cmd {
	case "version":
		fmt.Fprintln(stdout, version.Info())
		return 0
	case "styles":
		printStyles(stdout)
		return 0
	case "", "demo":
	default:
		fmt.Fprintf(stderr, "termly: unknown command %q\n", cmd)
		return 2
	}

	cli := config.CliFlags{
		NoColor:    *noColor,
		Pack:       *pack,
		Margins:    *margins,
		Stream:     *streamFlag,
		DebugLog:   *debugLog,
		ConfigPath: *configPath,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-color":
			cli.NoColorSet = true
		case "pack":
			cli.PackSet = true
		case "margins":
			cli.MarginsSet = true
		case "stream":
			cli.StreamSet = true
		case "debug-log":
			cli.DebugLogSet = true
		}
	})

	rc, err := config.ResolveConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "termly: %v\n", err)
		return 1
	}
	opts, closer, err := termly.OptionsFromConfig(rc)
	if err != nil {
		fmt.Fprintf(stderr, "termly: %v\n", err)
		return 1
	}
	defer closer.Close()
	if opts.NoColor {
		color.SetEnabled(false)
	}

	painted := stderr
	if rc.Stream == "stdout" {
		painted = stdout
	}
	d := demo{
		stdout: stdout,
		stderr: stderr,
		out:    painted,
		reg:    termly.NewRegistry(painted, opts),
		delay:  *delay,
	}
	if err := d.run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "termly: %v\n", err)
		return 1
	}
	return 0
}

func printStyles(w io.Writer) {
	title := cases.Title(language.English)
	for _, name := range widget.StyleNames() {
		style := widget.SpinnerStyles[name]
		fmt.Fprintf(w, "%-10s %-10s %s\n", name, title.String(name), strings.Join(style.Frames, " "))
	}
}

// demo reproduces the classic termly walkthrough: colored text, spinners,
// a status line and progress bars, each block on its own row.
type demo struct {
	stdout, stderr io.Writer
	out            io.Writer // the stream widgets paint on
	reg            *region.Registry
	delay          time.Duration
}

func (d demo) run(ctx context.Context) error {
	printer := message.NewPrinter(language.English)

	fmt.Fprintf(d.stdout, "%s, %s!\n", color.Colorize("Hello", color.Blue, color.None), color.Colorize("World", color.White, color.Green))
	fmt.Fprintln(d.stderr, color.Sprintf(color.Red, "%s, %s!", "Hello", "World"))
	fmt.Fprintln(d.stdout, color.Colorize(printer.Sprintf("%.2f", 12345.67), color.Cyan, color.None))
	fmt.Fprintln(d.stdout, color.Colorize(time.Now().Format("15:04"), color.Yellow, color.None))

	steps := []func(context.Context) error{
		d.spinner,
		d.spinnerWithStatus,
		d.barWithPercentage,
		d.squareBarWithStopwatch,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d demo) spinner(ctx context.Context) error {
	sp, err := widget.NewSpinner(d.reg, widget.SpinnerConfig{})
	if err != nil {
		return err
	}
	return region.Use(sp, func() error {
		return d.work(ctx, sp.Report)
	})
}

func (d demo) spinnerWithStatus(ctx context.Context) error {
	sp, err := widget.NewSpinner(d.reg, widget.SpinnerConfig{Style: "braille", Done: "✓"})
	if err != nil {
		return err
	}
	err = region.Use(sp, func() error {
		st, err := widget.NewStatus(d.reg, widget.StatusConfig{})
		if err != nil {
			return err
		}
		return region.Use(st, func() error {
			if err := st.WriteColor(color.Blue, "Doing work..."); err != nil {
				return err
			}
			if err := d.work(ctx, sp.Report); err != nil {
				return err
			}
			return st.WriteColor(color.Green, "Done!")
		})
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(d.reg)
	return err
}

func (d demo) barWithPercentage(ctx context.Context) error {
	bar, err := widget.NewBar(d.reg, widget.BarConfig{})
	if err != nil {
		return err
	}
	return region.Use(bar, func() error {
		pct, err := widget.NewStatus(d.reg, widget.StatusConfig{})
		if err != nil {
			return err
		}
		return region.Use(pct, func() error {
			err := d.work(ctx, func(v int) error {
				if err := bar.Report(v); err != nil {
					return err
				}
				return pct.Write(fmt.Sprintf("%d%%", v))
			})
			if err != nil {
				return err
			}
			return pct.Write("")
		})
	})
}

func (d demo) squareBarWithStopwatch(ctx context.Context) error {
	cols, _ := detect.TermSize(d.out)
	bar, err := widget.NewBar(d.reg, widget.BarConfig{Block: widget.SquareBlock, Width: min(20, cols/4)})
	if err != nil {
		return err
	}
	return region.Use(bar, func() error {
		sw, err := widget.NewStopwatch(d.reg, widget.StopwatchConfig{Format: `mm\:ss\.f`, Resolution: 100 * time.Millisecond})
		if err != nil {
			return err
		}
		return region.Use(sw, func() error {
			sw.Start()
			if err := d.work(ctx, bar.Report); err != nil {
				return err
			}
			if err := sw.Stop(); err != nil {
				return err
			}
			return sw.Err()
		})
	})
}

// work reports 0..100 with a pause between steps, stopping early if ctx is
// cancelled.
func (d demo) work(ctx context.Context, report func(int) error) error {
	for i := 0; i <= 100; i++ {
		if err := report(i); err != nil {
			return err
		}
		if d.delay <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.delay):
		}
	}
	return nil
}
