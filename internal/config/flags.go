package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// envList is a custom flag type for repeatable -env KEY=VALUE flags.
type envList map[string]string

func (e envList) String() string {
	pairs := make([]string, 0, len(e))
	for k, v := range e {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ", ")
}

func (e envList) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected KEY=VALUE, got %q", value)
	}
	e[k] = v
	return nil
}

// ParseFlags parses command-line flags, merges in an optional config file,
// and returns a Config. Everything after the flags is handed to the
// archiver verbatim.
func ParseFlags() (*Config, error) {
	return parseFlags(os.Args[1:], flag.CommandLine)
}

func parseFlags(args []string, fs *flag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()
	env := envList{}

	// Load the config file before registering flags: file values become
	// the flag defaults, so explicitly passed flags always win.
	if path := configPathFrom(args); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	var configFile string
	fs.StringVar(&configFile, "config", "", "Path to a YAML config file")

	fs.StringVar(&cfg.BinaryPath, "binary", cfg.BinaryPath, "Path to the archiver binary")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "Connect the archiver to this terminal's stdin and keep its prompts")
	fs.StringVar(&cfg.WorkDir, "cwd", cfg.WorkDir, "Working directory for the archiver (default: current directory)")
	fs.BoolVar(&cfg.Shell, "shell", cfg.Shell, "Run the command through the system shell")
	fs.Var(env, "env", "Environment override as KEY=VALUE (repeatable)")

	fs.DurationVar(&cfg.KillGrace, "kill-grace", cfg.KillGrace, "How long to wait for cooperative exit before SIGKILL")

	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "Prometheus metrics listen address (empty = disabled)")

	fs.BoolVar(&cfg.PrintCmd, "print-cmd", cfg.PrintCmd, "Print the command that would run, then exit")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, `sevenrun - run a 7-Zip style archiver with normalized streams and classified exits

Usage:
  sevenrun [flags] -- <archiver arguments>

Archiver:
`)
		printFlags(fs, "binary", "interactive", "cwd", "shell", "env")
		fmt.Fprintf(out, "\nTermination:\n")
		printFlags(fs, "kill-grace")
		fmt.Fprintf(out, "\nObservability:\n")
		printFlags(fs, "log-format", "log-level", "metrics")
		fmt.Fprintf(out, "\nDiagnostics:\n")
		printFlags(fs, "print-cmd", "config")
		fmt.Fprintf(out, "\nExample:\n  sevenrun -binary /usr/bin/7z -- a backup.7z docs/\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if len(env) > 0 {
		if cfg.Env == nil {
			cfg.Env = map[string]string{}
		}
		for k, v := range env {
			cfg.Env[k] = v
		}
	}

	cfg.RawArgs = fs.Args()
	return cfg, nil
}

// configPathFrom extracts the -config value without a full parse, since
// the file must be loaded before flag registration.
func configPathFrom(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if name != "-config" && name != "--config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// printFlags prints usage lines for the named flags, in order.
func printFlags(fs *flag.FlagSet, names ...string) {
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		fmt.Fprintf(fs.Output(), "  -%-12s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(fs.Output(), " (default: %s)", f.DefValue)
		}
		fmt.Fprintln(fs.Output())
	}
}
