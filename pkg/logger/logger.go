package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

type sessionIDKey struct{}

// New creates a JSON logger for serviceName writing to stderr, leaving stdout
// to the interactive console.
func New(serviceName, level string) *slog.Logger {
	return NewWithWriter(serviceName, level, os.Stderr)
}

// NewWithWriter creates a JSON logger for serviceName writing to w.
func NewWithWriter(serviceName, level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})

	return slog.New(handler).With(slog.String("service", serviceName))
}

// ParseLevel accepts the names understood by slog.Level ("debug", "WARN",
// "info+2", ...). Anything else yields info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithSessionID returns a copy of ctx carrying the shopping session ID.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionID returns the session ID carried by ctx, if any.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// WithContext decorates l with session_id, trace_id and span_id taken from
// ctx. Missing values are omitted.
func WithContext(ctx context.Context, l *slog.Logger) *slog.Logger {
	if id := SessionID(ctx); id != "" {
		l = l.With(slog.String("session_id", id))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return l
}
