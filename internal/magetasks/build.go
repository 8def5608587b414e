package magetasks

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the demo binary with version metadata.
func BuildAll() error {
	PrintH2Header("Build")

	pkg := ModulePath + "/internal/version"
	ldflags := strings.Join([]string{
		"-s", "-w",
		fmt.Sprintf("-X '%s.Version=%s'", pkg, gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*")),
		fmt.Sprintf("-X '%s.CommitHash=%s'", pkg, gitOutput("unknown", "rev-parse", "--short", "HEAD")),
		fmt.Sprintf("-X '%s.BuildDate=%s'", pkg, time.Now().UTC().Format(time.RFC3339)),
	}, " ")

	if err := Run("Building termly", "go", "build", "-ldflags", ldflags, "-o", BinPath, "./cmd/termly"); err != nil {
		PrintError("Build failed")
		return err
	}
	PrintSuccess("Built: " + BinPath)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")
	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = os.Remove("coverage.out")
	PrintSuccess("Cleaned build artifacts")
	return nil
}

// gitOutput runs git and returns its trimmed output, or fallback on error.
func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}
