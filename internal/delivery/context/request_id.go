// Package context carries request-scoped values (request ID, session ID,
// logger) between echo handlers and the layers below them.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
	sessionIDKey
)

// echo.Context store key for the request ID.
const echoRequestIDKey = "request_id"

const (
	// HeaderXRequestID is read from clients and echoed on responses and outgoing pushes.
	HeaderXRequestID = "X-Request-Id"

	// MaxRequestIDLength bounds client-supplied request IDs.
	MaxRequestIDLength = 128
)

func value[T comparable](ctx context.Context, k key) T {
	v, _ := ctx.Value(k).(T)

	return v
}

// GetRequestID returns the ID assigned by the request ID middleware, or a fresh
// UUID for requests that never went through it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	return value[string](ctx, requestIDKey)
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionIDFromContext returns "" outside session routes.
func GetSessionIDFromContext(ctx context.Context) string {
	return value[string](ctx, sessionIDKey)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns nil when ctx carries no request-scoped logger.
func GetLogger(ctx context.Context) *slog.Logger {
	return value[*slog.Logger](ctx, loggerKey)
}

// GetLoggerOrDefault is what services call: the request logger when present, fallback otherwise.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
