package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the process-wide tool configuration. It is loaded once
// before any File operation and treated as read-only thereafter.
type Config struct {
	// Tool is the location of the external metadata tool binary.
	Tool string `yaml:"tool"`
	// ExtraReadFlags are appended to the default read flags on every
	// read invocation.
	ExtraReadFlags []string `yaml:"extra_read_flags"`
	// LogLevel is a logrus level name ("debug", "info", "warn", ...).
	LogLevel string `yaml:"log_level"`
}

// Load builds a Config from environment variables, then overlays the
// optional YAML file named by SURGERY_CONFIG.
//
//	SURGERY_EXIFTOOL   tool binary (default "exiftool")
//	SURGERY_LOG_LEVEL  logrus level name (default "info")
//	SURGERY_CONFIG     path to a YAML config file
func Load() (*Config, error) {
	cfg := &Config{
		Tool:     os.Getenv("SURGERY_EXIFTOOL"),
		LogLevel: os.Getenv("SURGERY_LOG_LEVEL"),
	}
	if cfg.Tool == "" {
		cfg.Tool = "exiftool"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if path := os.Getenv("SURGERY_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		var file Config
		if err := yaml.Unmarshal(b, &file); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if file.Tool != "" {
			cfg.Tool = file.Tool
		}
		if len(file.ExtraReadFlags) > 0 {
			cfg.ExtraReadFlags = file.ExtraReadFlags
		}
		if file.LogLevel != "" {
			cfg.LogLevel = file.LogLevel
		}
	}
	return cfg, nil
}
