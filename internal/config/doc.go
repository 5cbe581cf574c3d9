// Package config holds runtime configuration for the audit tool.
//
// Configuration comes from three layers, later layers overriding earlier
// ones: built-in defaults, an optional .wcag-audit YAML file, and CLI
// flags. The Config struct is passed through the application via
// dependency injection rather than global state.
package config
