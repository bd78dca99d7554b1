package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
)

// zerologHandler is a slog.Handler that writes records through zerolog.
// It lets the command print the library's slog diagnostics on a console
// writer.
type zerologHandler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
	group  string
}

// newConsoleLogger returns a slog.Logger that prints human-readable lines
// to w at level and above.
func newConsoleLogger(w io.Writer, level slog.Level) *slog.Logger {
	console := zerolog.ConsoleWriter{Out: w, NoColor: true}
	logger := zerolog.New(console).
		Level(zerologLevel(level)).
		With().
		Timestamp().
		Logger()

	return slog.New(&zerologHandler{logger: logger})
}

// zerologLevel maps a slog level onto the nearest zerolog level.
func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l < slog.LevelInfo:
		return zerolog.DebugLevel
	case l < slog.LevelWarn:
		return zerolog.InfoLevel
	case l < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (h *zerologHandler) Enabled(_ context.Context, l slog.Level) bool {
	return zerologLevel(l) >= h.logger.GetLevel()
}

func (h *zerologHandler) Handle(_ context.Context, r slog.Record) error {
	event := h.logger.WithLevel(zerologLevel(r.Level))
	for _, a := range h.attrs {
		event = event.Interface(a.Key, a.Value.Resolve().Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		event = event.Interface(h.key(a.Key), a.Value.Resolve().Any())
		return true
	})
	event.Msg(r.Message)
	return nil
}

func (h *zerologHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}
	return &next
}

func (h *zerologHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = h.key(name)
	return &next
}

// key prefixes k with the current group.
func (h *zerologHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}
