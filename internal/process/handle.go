package process

import (
	"os"
	"sync"
)

// Handle is an opaque reference to one live OS process. It settles exactly
// once: either with a startup error (the OS could not create the process)
// or with the exit state observed by Wait. Later notifications are ignored.
type Handle struct {
	mu   sync.Mutex
	proc *os.Process

	once    sync.Once
	done    chan struct{}
	started chan struct{}

	startErr   error
	exitCode   *int
	exitSignal string
}

func newHandle() *Handle {
	return &Handle{
		done:    make(chan struct{}),
		started: make(chan struct{}),
	}
}

// awaitStarted blocks until Start has returned, so signal delivery never
// races process creation.
func (h *Handle) awaitStarted() { <-h.started }

func (h *Handle) markStarted() { close(h.started) }

// Done is closed once the handle has settled, whether by startup error,
// by exit, or by signal death.
func (h *Handle) Done() <-chan struct{} { return h.done }

// StartError reports the launch failure, if any. Only meaningful after
// Done is closed. A non-nil start error preempts any exit state.
func (h *Handle) StartError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.startErr
}

// ExitState returns the exit code (nil if the process was signaled) and
// the signal name (empty on code exits). Only meaningful after Done.
func (h *Handle) ExitState() (code *int, signal string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitCode, h.exitSignal
}

func (h *Handle) setProcess(p *os.Process) {
	h.mu.Lock()
	h.proc = p
	h.mu.Unlock()
}

func (h *Handle) process() *os.Process {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.proc
}

func (h *Handle) notifyStartError(err error) {
	h.once.Do(func() {
		h.mu.Lock()
		h.startErr = err
		h.mu.Unlock()
		close(h.done)
	})
}

func (h *Handle) notifyExit(code *int, signal string) {
	h.once.Do(func() {
		h.mu.Lock()
		h.exitCode = code
		h.exitSignal = signal
		h.mu.Unlock()
		close(h.done)
	})
}
