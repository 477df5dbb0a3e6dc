// Package logger wraps log/slog with request and dashboard-session context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	SetDefault(New(os.Getenv("ENV"), os.Stdout))
}

// New builds a logger for env: JSON at info level in production, text at debug level otherwise.
func New(env string, w io.Writer) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// SetDefault replaces the logger behind FromContext and slog's default.
func SetDefault(l *slog.Logger) {
	current.Store(l)
	slog.SetDefault(l)
}

// Default returns the logger installed by SetDefault.
func Default() *slog.Logger {
	return current.Load()
}

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionIDKey contextKey = "session_id"
)

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithSessionID adds the dashboard session ID to context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionID returns the session ID stored in ctx, if any.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// FromContext returns the default logger annotated with the request and session IDs in ctx.
func FromContext(ctx context.Context) *slog.Logger {
	l := Default()

	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		l = l.With(slog.String("request_id", requestID))
	}
	if sessionID := SessionID(ctx); sessionID != "" {
		l = l.With(slog.String("session_id", sessionID))
	}
	return l
}
