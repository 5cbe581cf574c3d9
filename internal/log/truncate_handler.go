package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLen is the attribute value length cap applied when no
// explicit limit is configured.
const DefaultMaxValueLen = 256

// truncationMarker is appended to values that were cut.
const truncationMarker = "...(truncated)"

// TruncateHandler wraps an slog.Handler and caps long string attribute
// values. Values beyond the limit are cut at a rune boundary and marked.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites can log state and observation text without worrying
//     about output size
type TruncateHandler struct {
	// handler is the underlying slog handler that receives capped records.
	handler slog.Handler

	// maxLen is the maximum string value length in runes.
	maxLen int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given handler.
// If handler is nil, the returned TruncateHandler wraps slog.Default's
// handler. A maxLen of zero or less selects DefaultMaxValueLen.
func NewTruncateHandler(handler slog.Handler, maxLen int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &TruncateHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle caps the record's attribute values and passes it on.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	capped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		capped.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, capped)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are capped before being added.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cappedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		cappedAttrs[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(cappedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr caps a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		cappedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			cappedAttrs[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(cappedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); utf8.RuneCountInString(s) > h.maxLen {
			return slog.String(a.Key, truncate(s, h.maxLen))
		}
	}

	return a
}

// truncate cuts s to maxLen runes and appends the truncation marker.
func truncate(s string, maxLen int) string {
	runes := 0
	for i := range s {
		if runes == maxLen {
			return s[:i] + truncationMarker
		}
		runes++
	}
	return s
}

// NewLogger creates a slog.Logger writing human-readable output to w with
// attribute values capped at the default length.
// If verbose is true the level is Debug, otherwise Info.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewTruncateHandler(textHandler, DefaultMaxValueLen))
}
