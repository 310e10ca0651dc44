package slogx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

var dl atomic.Pointer[Logger]

// InitGlobal builds the process logger: tint for humans, JSON otherwise.
// At debug level records carry their source location. extraHandlers wrap
// the base handler in the given order.
func InitGlobal(
	w io.Writer,
	logLevel string,
	pretty bool,
	extraHandlers ...func(slog.Handler) slog.Handler,
) error {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("init global logger: %v", err)
	}

	addSource := level <= slog.LevelDebug

	var handler slog.Handler
	if pretty {
		handler = tint.NewHandler(w, &tint.Options{
			AddSource:  addSource,
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     level,
		})
	}

	for _, eh := range extraHandlers {
		handler = eh(handler)
	}

	SetDefault(New(handler))

	return nil
}

func SetDefault(l *Logger) {
	dl.Store(l)
}

// Default returns the global logger, falling back to slog's default
// until InitGlobal has been called.
func Default() *Logger {
	if l := dl.Load(); l != nil {
		return l
	}

	return New(slog.Default().Handler())
}

func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, slog.LevelInfo, msg, attrs)
}

func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, slog.LevelDebug, msg, attrs)
}

func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, slog.LevelWarn, msg, attrs)
}

func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, slog.LevelError, msg, attrs)
}

func Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	Default().log(ctx, level, msg, attrs)
}
