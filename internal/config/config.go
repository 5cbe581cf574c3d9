package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/stormfors/wcag-audit/internal/report"
)

// Default configuration values.
const (
	// DefaultListenAddr binds the audit UI to the loopback interface only.
	// The tool holds unreleased audit findings about client websites, so it
	// is never exposed beyond the local machine by default.
	DefaultListenAddr = "127.0.0.1:8765"

	// DefaultEvaluator is the organization name shown in generated reports.
	DefaultEvaluator = "Stormfors"

	// DefaultWCAGVersion is the guideline version audits evaluate against.
	DefaultWCAGVersion = "2.2"

	// DefaultConformanceTarget is the targeted conformance level.
	DefaultConformanceTarget = "AA"

	// AppName is the application name used for XDG directory paths.
	AppName = "wcag-audit"
)

// Config holds all configuration options for the audit tool.
// This struct is designed to be populated from defaults, the config file,
// and CLI flags, then passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// ListenAddr is the "host:port" the audit UI server binds to.
	ListenAddr string

	// DBDir is the directory holding the SQLite database with saved
	// audit state. Defaults to the XDG data directory.
	DBDir string

	// Evaluator is the organization name shown in generated reports.
	Evaluator string

	// WCAGVersion is the guideline version named in generated reports.
	WCAGVersion string

	// ConformanceTarget is the conformance level named in generated reports.
	ConformanceTarget string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, info and above are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .wcag-audit in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., the listen
// address). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ListenAddr:        DefaultListenAddr,
		DBDir:             XDGDataDir(),
		Evaluator:         DefaultEvaluator,
		WCAGVersion:       DefaultWCAGVersion,
		ConformanceTarget: DefaultConformanceTarget,
	}
}

// XDGDataDir returns the XDG data directory for the audit tool.
// On Linux: ~/.local/share/wcag-audit
// On macOS: ~/Library/Application Support/wcag-audit
// On Windows: %LOCALAPPDATA%\wcag-audit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the audit tool.
// On Linux: ~/.config/wcag-audit
// On macOS: ~/Library/Application Support/wcag-audit
// On Windows: %APPDATA%\wcag-audit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ReportMeta returns the evaluation metadata reports render from this
// configuration.
func (c *Config) ReportMeta() report.Meta {
	return report.Meta{
		Evaluator:         c.Evaluator,
		WCAGVersion:       c.WCAGVersion,
		ConformanceTarget: c.ConformanceTarget,
	}
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return ErrEmptyListenAddr
	}
	if c.DBDir == "" {
		return ErrEmptyDBDir
	}
	if c.WCAGVersion == "" {
		return ErrEmptyWCAGVersion
	}
	if c.ConformanceTarget == "" {
		return ErrEmptyConformanceTarget
	}
	return nil
}
