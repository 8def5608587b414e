package magetasks

import (
	"errors"
	"fmt"
)

// LintAll runs every linter. Optional linters that are not installed are
// reported and skipped.
func LintAll() error {
	PrintH2Header("Lint")

	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error {
	out, err := outputOf("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	return Run("go vet", "go", "vet", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	err := Run("golangci-lint", "golangci-lint", "run", "--timeout=5m", "./...")
	if IsCommandNotFound(err) {
		PrintWarning("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
	}
	return err
}
