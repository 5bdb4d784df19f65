// Package config provides configuration management for sevenrun.
package config

import "time"

// Config holds all configuration options for one archiver run.
// The YAML file shape lives in file.go.
type Config struct {
	// Archiver
	BinaryPath  string
	Interactive bool
	WorkDir     string
	Shell       bool
	Env         map[string]string

	// Termination
	KillGrace time.Duration

	// Observability
	LogFormat   string // json, text
	LogLevel    string // debug, info, warn, error
	MetricsAddr string // empty = disabled

	// Diagnostic modes (flag-only, not read from the config file)
	PrintCmd bool

	// RawArgs are the archiver arguments left after flag parsing.
	RawArgs []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BinaryPath:  "7z",
		KillGrace:   5 * time.Second,
		LogFormat:   "text",
		LogLevel:    "info",
		MetricsAddr: "", // Disabled unless asked for
	}
}
