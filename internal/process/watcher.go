package process

// Watch converts the handle's asynchronous termination into a single
// settlement. The returned channel delivers exactly one value:
//
//   - a startup error, raw and unclassified, if the OS never created the
//     process (this path preempts exit classification);
//   - the Classify result otherwise — nil for a clean exit, *ExitError
//     for anything else.
//
// argv and dir are carried into the failure for diagnostics.
func Watch(h *Handle, argv []string, dir string) <-chan error {
	out := make(chan error, 1)
	go func() {
		<-h.Done()
		if err := h.StartError(); err != nil {
			out <- err
			return
		}
		code, signal := h.ExitState()
		out <- Classify(code, signal, dir, argv)
	}()
	return out
}

// WatchDescriptor is Watch with the diagnostics taken from the descriptor
// that launched the process.
func WatchDescriptor(d *Descriptor, h *Handle) <-chan error {
	return Watch(h, d.Argv(), d.Dir())
}
