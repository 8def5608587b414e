package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkoosis/termly/pkg/color"
)

// Out receives task headers and messages.
var Out io.Writer = os.Stdout

// PrintH1Header prints a top-level header.
func PrintH1Header(title string) {
	const width = 60
	rule := strings.Repeat("=", width)
	padding := max((width-len(title))/2, 0)
	fmt.Fprintf(Out, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), color.Colorize(title, color.BrightWhite, color.None), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n=== %s ===\n\n", title)
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintf(Out, "%s %s\n", color.Colorize("✓", color.Green, color.None), msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintf(Out, "%s %s\n", color.Colorize("!", color.Yellow, color.None), msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintf(Out, "%s %s\n", color.Colorize("✗", color.Red, color.None), msg)
}
