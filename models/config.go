// Package models defines the shared data structures: run configuration
// and validation issues.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values come from an optional YAML
// file; anything unset falls back to the defaults.
type Config struct {
	// BackupSuffix is appended to the input path for the one-time backup.
	BackupSuffix string `yaml:"backup_suffix"`
	// LogName is the issue log filename written beside the output file.
	LogName string `yaml:"log_name"`
	// DBPath points at the run-history database; empty disables history.
	DBPath string `yaml:"db_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		BackupSuffix: ".bak",
		LogName:      "log",
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = ".bak"
	}
	if cfg.LogName == "" {
		cfg.LogName = "log"
	}
	return cfg, nil
}
