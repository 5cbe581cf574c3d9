// Package log provides logging helpers built on log/slog.
//
// The TruncateHandler wrapper caps long attribute values before they reach
// the underlying handler. Audit observations and serialized state can run
// to thousands of characters, and echoing them in full makes log output
// unreadable without adding information.
package log
