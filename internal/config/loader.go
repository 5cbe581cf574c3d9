package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".wcag-audit"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file shape. All fields are optional;
// empty fields leave the corresponding Config value untouched.
type File struct {
	// Listen overrides the server listen address.
	Listen string `yaml:"listen"`

	// DBDir overrides where the audit database is stored.
	DBDir string `yaml:"db_dir"`

	// Evaluator overrides the organization name in reports.
	Evaluator string `yaml:"evaluator"`

	// WCAGVersion overrides the guideline version in reports.
	WCAGVersion string `yaml:"wcag_version"`

	// ConformanceTarget overrides the conformance level in reports.
	ConformanceTarget string `yaml:"conformance_target"`
}

// Apply merges the file's non-empty values into the configuration.
func (f *File) Apply(c *Config) {
	if f.Listen != "" {
		c.ListenAddr = f.Listen
	}
	if f.DBDir != "" {
		c.DBDir = f.DBDir
	}
	if f.Evaluator != "" {
		c.Evaluator = f.Evaluator
	}
	if f.WCAGVersion != "" {
		c.WCAGVersion = f.WCAGVersion
	}
	if f.ConformanceTarget != "" {
		c.ConformanceTarget = f.ConformanceTarget
	}
}

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .wcag-audit in the current directory
// 3. Look for .wcag-audit in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
