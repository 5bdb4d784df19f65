package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of the config file. Durations are strings
// ("5s", "1m30s") since yaml.v3 has no native time.Duration decoding.
type fileConfig struct {
	BinaryPath  *string           `yaml:"binary_path"`
	Interactive *bool             `yaml:"interactive"`
	WorkDir     *string           `yaml:"work_dir"`
	Shell       *bool             `yaml:"shell"`
	Env         map[string]string `yaml:"env"`
	KillGrace   *string           `yaml:"kill_grace"`
	LogFormat   *string           `yaml:"log_format"`
	LogLevel    *string           `yaml:"log_level"`
	MetricsAddr *string           `yaml:"metrics_addr"`
}

// loadFile overlays the YAML file at path onto cfg. Only keys present in
// the file are touched.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.BinaryPath != nil {
		cfg.BinaryPath = *fc.BinaryPath
	}
	if fc.Interactive != nil {
		cfg.Interactive = *fc.Interactive
	}
	if fc.WorkDir != nil {
		cfg.WorkDir = *fc.WorkDir
	}
	if fc.Shell != nil {
		cfg.Shell = *fc.Shell
	}
	if len(fc.Env) > 0 {
		if cfg.Env == nil {
			cfg.Env = map[string]string{}
		}
		for k, v := range fc.Env {
			cfg.Env[k] = v
		}
	}
	if fc.KillGrace != nil {
		grace, err := time.ParseDuration(*fc.KillGrace)
		if err != nil {
			return fmt.Errorf("parse config file %s: kill_grace: %w", path, err)
		}
		cfg.KillGrace = grace
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.MetricsAddr != nil {
		cfg.MetricsAddr = *fc.MetricsAddr
	}
	return nil
}
