package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultMaxValueRunes is the longest string attribute kept intact.
const DefaultMaxValueRunes = 80

// Ellipsis marks a clipped value.
const Ellipsis = "…"

// ClipHandler wraps an slog.Handler and rewrites string attributes:
// line breaks become spaces and values longer than maxRunes are cut and
// suffixed with Ellipsis.
type ClipHandler struct {
	// handler is the underlying slog handler that receives clipped records.
	handler slog.Handler

	// maxRunes is the clipping limit in characters.
	maxRunes int
}

// NewClipHandler creates a ClipHandler around handler. A nil handler uses
// slog.Default().Handler(); maxRunes <= 0 uses DefaultMaxValueRunes.
func NewClipHandler(handler slog.Handler, maxRunes int) *ClipHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxRunes <= 0 {
		maxRunes = DefaultMaxValueRunes
	}
	return &ClipHandler{handler: handler, maxRunes: maxRunes}
}

// Enabled delegates to the underlying handler.
func (h *ClipHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it on.
func (h *ClipHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.clipAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes, clipped.
func (h *ClipHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = h.clipAttr(a)
	}
	return &ClipHandler{handler: h.handler.WithAttrs(out), maxRunes: h.maxRunes}
}

// WithGroup returns a new handler with the given group name.
func (h *ClipHandler) WithGroup(name string) slog.Handler {
	return &ClipHandler{handler: h.handler.WithGroup(name), maxRunes: h.maxRunes}
}

// clipAttr clips a single attribute, recursing into groups.
func (h *ClipHandler) clipAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			out[i] = h.clipAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	case slog.KindString:
		return slog.String(a.Key, Clip(a.Value.String(), h.maxRunes))
	default:
		return a
	}
}

// Clip flattens line breaks in s and shortens it to maxRunes characters.
func Clip(s string, maxRunes int) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes]) + Ellipsis
}

// NewLogger creates a text logger writing to w.
// If verbose is true the level is Debug, otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewClipHandler(slog.NewTextHandler(w, opts), DefaultMaxValueRunes))
}

// NewJSONLogger creates a JSON logger writing to w, for log collection.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewClipHandler(slog.NewJSONHandler(w, opts), DefaultMaxValueRunes))
}

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
