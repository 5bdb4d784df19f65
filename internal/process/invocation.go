// Package process launches the external archiver binary and turns its
// OS-level exit (code or signal) into a classified outcome.
package process

import "strings"

// Invocation describes one archiver run. It is immutable once constructed;
// the caller builds it, Prepare consumes it.
type Invocation struct {
	// Program is the path to the archiver binary.
	Program string

	// Args are the already-normalized command-line arguments.
	Args []string

	// Dir is the working directory. Empty means the caller's current directory.
	Dir string

	// Env holds environment overrides, overlaid on the parent environment.
	Env map[string]string

	// UID and GID optionally run the child under different credentials.
	// Honored on Unix only; Windows ignores them.
	UID *uint32
	GID *uint32

	// Shell runs the command through the system shell instead of directly.
	Shell bool
}

// Argv returns the full argument vector, program first.
// When Shell is set the whole command line is wrapped in "sh -c", with
// each word quoted so arguments keep their boundaries through the shell.
func (inv Invocation) Argv() []string {
	if inv.Shell {
		words := make([]string, 0, len(inv.Args)+1)
		words = append(words, shellQuote(inv.Program))
		for _, arg := range inv.Args {
			words = append(words, shellQuote(arg))
		}
		return []string{"/bin/sh", "-c", strings.Join(words, " ")}
	}
	argv := make([]string, 0, len(inv.Args)+1)
	argv = append(argv, inv.Program)
	return append(argv, inv.Args...)
}

// shellQuote wraps w in single quotes unless it is plainly safe to pass
// to the shell verbatim.
func shellQuote(w string) string {
	if w != "" && !strings.ContainsAny(w, " \t\n\"'\\$`&|;<>()*?[]#~{}!") {
		return w
	}
	return "'" + strings.ReplaceAll(w, "'", `'\''`) + "'"
}

// CommandLine returns the command as a single space-joined string for
// logging and diagnostics.
func (inv Invocation) CommandLine() string {
	return inv.Program + " " + strings.Join(inv.Args, " ")
}
