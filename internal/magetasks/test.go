package magetasks

import "github.com/magefile/mage/sh"

// TestAll runs all tests.
func TestAll() error {
	PrintH2Header("Tests")
	return Run("go test", "go", "test", "./...")
}

// TestRace runs tests with the race detector. The region registry and the
// stopwatch are concurrent, so this is the target CI runs.
func TestRace() error {
	PrintH2Header("Race Detector")
	return Run("go test -race", "go", "test", "-race", "-count=1", "./...")
}

// TestCoverage runs tests with coverage and prints the per-function report.
func TestCoverage() error {
	PrintH2Header("Test Coverage")
	if err := Run("go test -cover", "go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

func outputOf(cmd string, args ...string) (string, error) {
	return sh.Output(cmd, args...)
}
