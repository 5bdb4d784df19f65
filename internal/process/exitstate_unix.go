//go:build unix

package process

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// exitStateOf extracts (exit code, signal name) from a Wait error.
// Exactly one of the two is meaningful: signal deaths return a nil code.
func exitStateOf(err error) (code *int, signal string) {
	if err == nil {
		zero := 0
		return &zero, ""
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if ws.Signaled() {
				return nil, unix.SignalName(unix.Signal(ws.Signal()))
			}
			c := ws.ExitStatus()
			return &c, ""
		}
		c := exitErr.ExitCode()
		return &c, ""
	}

	// Wait failed for a non-exit reason (I/O error on the pipes, etc).
	one := 1
	return &one, ""
}
