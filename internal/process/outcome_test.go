package process

import (
	"strings"
	"testing"
)

func intp(v int) *int { return &v }

// =============================================================================
// Classification table
// =============================================================================

func TestClassify_Table(t *testing.T) {
	argv := []string{"/usr/bin/7z", "add", "archive.7z"}

	tests := []struct {
		name     string
		code     *int
		signal   string
		wantFail bool
	}{
		{name: "clean exit", code: intp(0), signal: "", wantFail: false},
		{name: "nonzero code", code: intp(2), signal: "", wantFail: true},
		{name: "negative code", code: intp(-1), signal: "", wantFail: true},
		{name: "signal only", code: nil, signal: "SIGKILL", wantFail: true},
		{name: "zero code with signal", code: intp(0), signal: "SIGTERM", wantFail: true},
		{name: "neither code nor signal", code: nil, signal: "", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.code, tt.signal, "/tmp", argv)
			if tt.wantFail && err == nil {
				t.Fatal("Classify() = nil, want failure")
			}
			if !tt.wantFail && err != nil {
				t.Fatalf("Classify() = %v, want nil", err)
			}
			if err == nil {
				return
			}
			exitErr, ok := err.(*ExitError)
			if !ok {
				t.Fatalf("Classify() returned %T, want *ExitError", err)
			}
			// Inputs are carried verbatim.
			if exitErr.Signal != tt.signal {
				t.Errorf("Signal = %q, want %q", exitErr.Signal, tt.signal)
			}
			if (exitErr.Status == nil) != (tt.code == nil) {
				t.Errorf("Status = %v, want %v", exitErr.Status, tt.code)
			}
			if exitErr.Dir != "/tmp" {
				t.Errorf("Dir = %q, want %q", exitErr.Dir, "/tmp")
			}
		})
	}
}

// =============================================================================
// Message formatting
// =============================================================================

func TestExitError_CodeMessage(t *testing.T) {
	err := Classify(intp(2), "", "/work", []string{"/usr/bin/7z", "add", "archive.7z", "file.txt"})
	if err == nil {
		t.Fatal("expected failure for exit code 2")
	}
	msg := err.Error()

	for _, want := range []string{
		`exit with code "2"`,
		"/work",
		"/usr/bin/7z add archive.7z file.txt",
		"Argument[0] = add",
		"Argument[1] = archive.7z",
		"Argument[2] = file.txt",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestExitError_SignalMessage(t *testing.T) {
	err := Classify(nil, "SIGKILL", "/work", []string{"/usr/bin/7z", "x", "a.7z"})
	if err == nil {
		t.Fatal("expected failure for signal exit")
	}
	msg := err.Error()

	if !strings.Contains(msg, `exit with signal "SIGKILL"`) {
		t.Errorf("message missing signal clause:\n%s", msg)
	}
	if strings.Contains(msg, "exit with code") {
		t.Errorf("signal exit should not mention an exit code:\n%s", msg)
	}
}

func TestExitError_ArgumentsAreZeroIndexedAfterProgram(t *testing.T) {
	err := Classify(intp(1), "", "/work", []string{"7z"})
	if err == nil {
		t.Fatal("expected failure")
	}
	if strings.Contains(err.Error(), "Argument[") {
		t.Errorf("no arguments after program, but message enumerates some:\n%s", err.Error())
	}
}
