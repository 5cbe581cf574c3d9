package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyListenAddr is returned when the server listen address is blank.
	ErrEmptyListenAddr = errors.New("listen address must not be empty")

	// ErrEmptyDBDir is returned when no database directory is configured.
	ErrEmptyDBDir = errors.New("database directory must not be empty")

	// ErrEmptyWCAGVersion is returned when the WCAG version is blank.
	// Reports name the guideline version they evaluate against.
	ErrEmptyWCAGVersion = errors.New("wcag version must not be empty")

	// ErrEmptyConformanceTarget is returned when the conformance level is blank.
	ErrEmptyConformanceTarget = errors.New("conformance target must not be empty")
)
