package store

import "errors"

// ErrEmptyURL is returned when adding a blank page URL to the audit.
var ErrEmptyURL = errors.New("page URL must not be empty")
