package sevenzip

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sevenrun/sevenrun/internal/process"
)

func TestRunner_InvocationCarriesConfig(t *testing.T) {
	uid := uint32(1000)
	cfg := &Config{
		BinaryPath: "/opt/7z/7zz",
		WorkDir:    "/data",
		Env:        map[string]string{"LANG": "C"},
		UID:        &uid,
	}
	inv := NewRunner(cfg).Invocation([]string{"l", "a.7z"})

	if inv.Program != "/opt/7z/7zz" {
		t.Errorf("Program = %q", inv.Program)
	}
	if inv.Dir != "/data" {
		t.Errorf("Dir = %q", inv.Dir)
	}
	if inv.Env["LANG"] != "C" {
		t.Errorf("Env = %v", inv.Env)
	}
	if inv.UID == nil || *inv.UID != 1000 {
		t.Errorf("UID = %v", inv.UID)
	}
	want := "-y l a.7z -bso1 -bse1 -bsp2"
	if got := strings.Join(inv.Args, " "); got != want {
		t.Errorf("Args = %q, want %q", got, want)
	}
}

func TestRunner_CommandString(t *testing.T) {
	r := NewRunner(DefaultConfig())
	got := r.CommandString([]string{"add", "archive.7z", "file.txt"})
	want := "7z -y add archive.7z file.txt -bso1 -bse1 -bsp2"
	if got != want {
		t.Errorf("CommandString() = %q, want %q", got, want)
	}
}

func TestRunner_InteractiveSkipsAssumeYes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interactive = true
	inv := NewRunner(cfg).Invocation([]string{"x", "a.7z"})
	for _, arg := range inv.Args {
		if arg == "-y" {
			t.Errorf("interactive invocation injected -y: %v", inv.Args)
		}
	}
}

// TestRunner_SubstituteBinary proves the injected binary path makes the
// whole pipeline testable without a real archiver installed.
func TestRunner_SubstituteBinary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BinaryPath = "echo"

	d, err := process.Prepare(NewRunner(cfg).Invocation([]string{"add", "a.7z"}), false)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	h := d.Execute()

	outc := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(d.Output())
		outc <- string(data)
	}()

	select {
	case err := <-process.WatchDescriptor(d, h):
		if err != nil {
			t.Fatalf("outcome = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stand-in binary did not settle")
	}

	if out := <-outc; !strings.Contains(out, "-y add a.7z -bso1 -bse1 -bsp2") {
		t.Errorf("stand-in output = %q, want the normalized vector echoed back", out)
	}
}
