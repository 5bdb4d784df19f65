package process

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Descriptor is a launch plan built before the process starts. Its streams
// are readable from the moment Prepare returns and stay valid for the
// process lifetime, so callers can wire consumers up front.
type Descriptor struct {
	inv         Invocation
	interactive bool
	dir         string
	tee         *Tee
}

// Prepare resolves the launch configuration into a descriptor without
// starting anything. The working directory defaults to the caller's
// current directory.
func Prepare(inv Invocation, interactive bool) (*Descriptor, error) {
	dir := inv.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	return &Descriptor{
		inv:         inv,
		interactive: interactive,
		dir:         dir,
		tee:         NewTee(),
	}, nil
}

// CommandLine returns the full command line for logging and diagnostics.
func (d *Descriptor) CommandLine() string { return d.inv.CommandLine() }

// Argv returns the full argument vector, program first.
func (d *Descriptor) Argv() []string { return d.inv.Argv() }

// Dir returns the resolved working directory.
func (d *Descriptor) Dir() string { return d.dir }

// Output is the primary stream: standard program messages plus error text.
func (d *Descriptor) Output() io.Reader { return d.tee.Primary() }

// Progress is the diagnostic stream carrying progress/status text.
func (d *Descriptor) Progress() io.Reader { return d.tee.Diagnostic() }

// Execute starts the OS process and returns immediately. Launch failures
// (missing binary, permission denied) surface asynchronously on the
// returned handle, never as a synchronous error here.
//
// The child's stdout fans out to both descriptor streams. Its stderr is
// deliberately left unread: the argument normalizer passes -bse1, which
// makes the archiver fold its error text into stdout.
func (d *Descriptor) Execute() *Handle {
	argv := d.inv.Argv()
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = d.dir
	if len(d.inv.Env) > 0 {
		env := os.Environ()
		for k, v := range d.inv.Env {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}
	if d.interactive {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = d.tee
	cmd.SysProcAttr = sysProcAttr(d.inv)

	h := newHandle()
	go run(h, cmd, d.tee)
	return h
}

// run drives one process from start to settlement.
func run(h *Handle, cmd *exec.Cmd, tee *Tee) {
	if err := cmd.Start(); err != nil {
		tee.Close()
		h.notifyStartError(err)
		h.markStarted()
		return
	}
	h.setProcess(cmd.Process)
	h.markStarted()

	// Wait also waits for the stdout copy into the tee to finish.
	err := cmd.Wait()
	tee.Close()

	code, signal := exitStateOf(err)
	h.notifyExit(code, signal)
}
