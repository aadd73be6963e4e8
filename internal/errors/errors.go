// Package errors formats errors for terminal display and extracts
// pass-through exit codes from external command failures.
package errors

import (
	"errors"
	"os/exec"

	"github.com/fatih/color"
)

var errorPrefix = color.New(color.FgRed, color.Bold)

// Format renders an error as a one-line user-facing message with a
// colored prefix. Returns "" for a nil error.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return errorPrefix.Sprint("error: ") + err.Error()
}

// ExitCode returns the process exit status to use for err. External
// command failures pass their own exit status through; any other
// error maps to 1, and nil to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
