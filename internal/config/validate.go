package config

import (
	"errors"
	"fmt"
	"net"
	"os"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors and inconsistencies.
// Returns nil if valid, or an error describing every problem found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.BinaryPath == "" {
		errs = append(errs, ValidationError{
			Field:   "binary_path",
			Message: "archiver binary path is required",
		})
	}

	if len(cfg.RawArgs) == 0 {
		errs = append(errs, ValidationError{
			Field:   "args",
			Message: "no archiver arguments given (pass them after --)",
		})
	}

	if cfg.KillGrace <= 0 {
		errs = append(errs, ValidationError{
			Field:   "kill_grace",
			Message: "must be positive",
		})
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   "log_format",
			Message: fmt.Sprintf("unknown format %q (want json or text)", cfg.LogFormat),
		})
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level %q", cfg.LogLevel),
		})
	}

	if cfg.WorkDir != "" {
		if info, err := os.Stat(cfg.WorkDir); err != nil {
			errs = append(errs, ValidationError{
				Field:   "work_dir",
				Message: err.Error(),
			})
		} else if !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "work_dir",
				Message: "not a directory",
			})
		}
	}

	if cfg.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.MetricsAddr); err != nil {
			errs = append(errs, ValidationError{
				Field:   "metrics_addr",
				Message: fmt.Sprintf("invalid listen address: %v", err),
			})
		}
	}

	return errors.Join(errs...)
}
