package process

import (
	"fmt"
	"strconv"
	"strings"
)

// ExitError describes an archiver run that did not succeed. Exactly one of
// Status and Signal is meaningful: signal exits carry no status and code
// exits carry no signal, but both fields stay inspectable.
type ExitError struct {
	// Status is the numeric exit code, nil when the process was signaled.
	Status *int

	// Signal is the termination signal name ("SIGKILL"), empty on code exits.
	Signal string

	// Dir is the working directory the process ran in.
	Dir string

	// Argv is the full invocation, program first, kept for diagnostics.
	Argv []string
}

// Error renders a self-describing report: how the process died, then the
// full command line, then each argument on its own labeled line.
func (e *ExitError) Error() string {
	var b strings.Builder
	if e.Signal != "" {
		fmt.Fprintf(&b, "archiver exit with signal %q", e.Signal)
	} else {
		status := "unknown"
		if e.Status != nil {
			status = strconv.Itoa(*e.Status)
		}
		fmt.Fprintf(&b, "archiver exit with code %q", status)
	}
	fmt.Fprintf(&b, " (workdir: %s)\n", e.Dir)
	b.WriteString(strings.Join(e.Argv, " "))
	for i, arg := range e.argsAfterProgram() {
		fmt.Fprintf(&b, "\n  Argument[%d] = %s", i, arg)
	}
	return b.String()
}

func (e *ExitError) argsAfterProgram() []string {
	if len(e.Argv) == 0 {
		return nil
	}
	return e.Argv[1:]
}

// Classify maps a raw (exit code, signal) pair to an outcome. It returns
// nil only for a clean exit: code zero and no signal. Anything else yields
// an *ExitError carrying the inputs verbatim.
func Classify(code *int, signal, dir string, argv []string) error {
	if code != nil && *code == 0 && signal == "" {
		return nil
	}
	return &ExitError{
		Status: code,
		Signal: signal,
		Dir:    dir,
		Argv:   argv,
	}
}
