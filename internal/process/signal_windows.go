//go:build windows

package process

import "os"

// Interrupt terminates the process. Windows has no cooperative signal
// delivery for console-less children, so this is already forceful.
func (h *Handle) Interrupt() error {
	h.awaitStarted()
	p := h.process()
	if p == nil {
		return os.ErrProcessDone
	}
	return p.Kill()
}

// Kill terminates the process.
func (h *Handle) Kill() error {
	return h.Interrupt()
}
