//go:build unix

package process

import (
	"os"
	"syscall"
)

// Interrupt delivers the cooperative termination request (SIGTERM),
// preferring the whole process group so shell-wrapped children die too.
func (h *Handle) Interrupt() error {
	return h.signalGroup(syscall.SIGTERM)
}

// Kill delivers the non-catchable termination request (SIGKILL).
func (h *Handle) Kill() error {
	return h.signalGroup(syscall.SIGKILL)
}

func (h *Handle) signalGroup(sig syscall.Signal) error {
	h.awaitStarted()
	p := h.process()
	if p == nil {
		return os.ErrProcessDone
	}
	if pgid, err := syscall.Getpgid(p.Pid); err == nil {
		return syscall.Kill(-pgid, sig)
	}
	return p.Signal(sig)
}
