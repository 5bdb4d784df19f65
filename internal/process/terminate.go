package process

import "time"

// DefaultKillGrace is how long Terminate waits for a cooperative exit
// before escalating to SIGKILL.
const DefaultKillGrace = 5 * time.Second

// Terminate requests cooperative shutdown of the process behind h and
// escalates to a kill after DefaultKillGrace. See TerminateAfter.
func Terminate(h *Handle) <-chan struct{} {
	return TerminateAfter(h, DefaultKillGrace)
}

// TerminateAfter sends the interrupt request immediately, then arms a
// timer for the given grace period. The returned channel closes once the
// process has actually exited, however that happens; cooperative and
// forced exits are not distinguished.
//
// If the interrupt cannot be delivered at all (process already gone) the
// channel closes at once. If the timer fires first, a kill signal is
// delivered, and the channel still closes only when the exit event
// arrives. The timer is stopped the instant exit is observed, so a
// natural exit never leaves a dangling kill behind.
func TerminateAfter(h *Handle, grace time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		if err := h.Interrupt(); err != nil {
			// Nothing left to signal.
			return
		}

		timer := time.NewTimer(grace)
		defer timer.Stop()

		select {
		case <-h.Done():
			return
		case <-timer.C:
			h.Kill()
		}
		<-h.Done()
	}()
	return done
}
