//go:build windows

package process

import (
	"errors"
	"os/exec"
)

// exitStateOf extracts the exit code from a Wait error. Windows has no
// signal deaths, so the signal name is always empty.
func exitStateOf(err error) (code *int, signal string) {
	if err == nil {
		zero := 0
		return &zero, ""
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c := exitErr.ExitCode()
		return &c, ""
	}

	one := 1
	return &one, ""
}
