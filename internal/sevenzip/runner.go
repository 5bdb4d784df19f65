package sevenzip

import (
	"strings"

	"github.com/sevenrun/sevenrun/internal/process"
)

// Config holds configuration for archiver execution. The binary path is
// injected here rather than read from a global so tests can substitute a
// stand-in binary.
type Config struct {
	// BinaryPath is the path to the archiver binary.
	BinaryPath string

	// Interactive connects the child's stdin to the caller's and leaves
	// confirmation prompts alone.
	Interactive bool

	// WorkDir is the working directory for the child. Empty = caller's cwd.
	WorkDir string

	// Env holds environment overrides for the child.
	Env map[string]string

	// UID and GID optionally run the child under different credentials
	// (Unix only).
	UID *uint32
	GID *uint32

	// Shell runs the command through the system shell.
	Shell bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BinaryPath: "7z",
	}
}

// Runner builds ready-to-launch invocations for the archiver.
type Runner struct {
	config *Config
}

// NewRunner creates a new archiver runner with the given configuration.
func NewRunner(cfg *Config) *Runner {
	return &Runner{config: cfg}
}

// Name returns "7z".
func (r *Runner) Name() string {
	return "7z"
}

// Invocation normalizes the raw arguments and produces the invocation the
// process launcher consumes. The invocation is ready to Prepare; nothing
// is started here.
func (r *Runner) Invocation(raw []string) process.Invocation {
	return process.Invocation{
		Program: r.config.BinaryPath,
		Args:    Normalize(raw, r.config.Interactive),
		Dir:     r.config.WorkDir,
		Env:     r.config.Env,
		UID:     r.config.UID,
		GID:     r.config.GID,
		Shell:   r.config.Shell,
	}
}

// Interactive reports whether the runner is in interactive mode.
func (r *Runner) Interactive() bool {
	return r.config.Interactive
}

// CommandString returns the command that would be executed (for debugging).
func (r *Runner) CommandString(raw []string) string {
	inv := r.Invocation(raw)
	return inv.Program + " " + strings.Join(inv.Args, " ")
}
