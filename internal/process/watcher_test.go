package process

import (
	"errors"
	"testing"
	"time"
)

var watchArgv = []string{"/usr/bin/7z", "add", "archive.7z"}

// =============================================================================
// Settlement semantics
// =============================================================================

func TestWatch_SuccessResolvesNil(t *testing.T) {
	h := newHandle()
	ch := Watch(h, watchArgv, "/tmp")

	h.notifyExit(intp(0), "")

	select {
	case err := <-ch:
		if err != nil {
			t.Errorf("settled with %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watch did not settle")
	}
}

func TestWatch_SettlesExactlyOnce(t *testing.T) {
	h := newHandle()
	ch := Watch(h, watchArgv, "/tmp")

	// Fire several exit-like notifications; only the first may count.
	h.notifyExit(intp(3), "")
	h.notifyExit(intp(0), "")
	h.notifyStartError(errors.New("late start error"))

	var exitErr *ExitError
	select {
	case err := <-ch:
		if !errors.As(err, &exitErr) {
			t.Fatalf("settled with %v (%T), want *ExitError", err, err)
		}
		if exitErr.Status == nil || *exitErr.Status != 3 {
			t.Errorf("Status = %v, want 3 from the first notification", exitErr.Status)
		}
	case <-time.After(time.Second):
		t.Fatal("watch did not settle")
	}

	select {
	case err := <-ch:
		t.Errorf("watch settled a second time with %v", err)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatch_StartErrorPreemptsClassification(t *testing.T) {
	h := newHandle()
	sentinel := errors.New("fork/exec: permission denied")
	ch := Watch(h, watchArgv, "/tmp")

	h.notifyStartError(sentinel)
	h.notifyExit(intp(0), "")

	select {
	case err := <-ch:
		if !errors.Is(err, sentinel) {
			t.Errorf("settled with %v, want the raw startup error", err)
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			t.Error("startup errors must bypass the classifier")
		}
	case <-time.After(time.Second):
		t.Fatal("watch did not settle")
	}
}

func TestWatch_SignalExitRejectsWithDiagnostics(t *testing.T) {
	h := newHandle()
	ch := Watch(h, watchArgv, "/data")

	h.notifyExit(nil, "SIGKILL")

	err := <-ch
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("settled with %T, want *ExitError", err)
	}
	if exitErr.Signal != "SIGKILL" {
		t.Errorf("Signal = %q, want SIGKILL", exitErr.Signal)
	}
	if exitErr.Dir != "/data" {
		t.Errorf("Dir = %q, want /data", exitErr.Dir)
	}
	if len(exitErr.Argv) != len(watchArgv) {
		t.Errorf("Argv = %v, want the full invocation", exitErr.Argv)
	}
}
