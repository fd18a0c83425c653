package logger

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler hands each record to every child handler whose level
// admits it. The callers pair the stderr handler with the JSON --log-file
// handler this way, so the two can run at different levels.
type fanoutHandler struct {
	children []slog.Handler
}

// Multi joins loggers into one. Records go to each logger's handler; a
// failing handler does not stop the others, and their errors are joined.
func Multi(loggers ...*slog.Logger) *slog.Logger {
	children := make([]slog.Handler, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			children = append(children, l.Handler())
		}
	}
	return slog.New(&fanoutHandler{children: children})
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.children {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f.children {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		// Handlers may retain the record, so each gets its own copy of the attrs.
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	return f.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f *fanoutHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	children := make([]slog.Handler, len(f.children))
	for i, h := range f.children {
		children[i] = fn(h)
	}
	return &fanoutHandler{children: children}
}
