package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey int

const (
	loggerKey contextKey = iota
	requestIDKey
	tenantIDKey
	userIDKey
)

// WithContext attaches a logger to the context so downstream code can log
// with the request's accumulated fields
func WithContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger attached to the context. Code that runs
// outside a request gets a no-op logger rather than a nil.
func FromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// tag stores the value under key and returns a context and logger that both
// carry it, so the ID follows every later log line and lookup.
func tag(ctx context.Context, log *zap.Logger, key contextKey, field, value string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, key, value)
	log = log.With(zap.String(field, value))
	return WithContext(ctx, log), log
}

// WithRequestID records the request ID on the context and on the logger
func WithRequestID(ctx context.Context, log *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	return tag(ctx, log, requestIDKey, "request_id", requestID)
}

// WithTenantID records the resolved tenant on the context and on the logger
func WithTenantID(ctx context.Context, log *zap.Logger, tenantID string) (context.Context, *zap.Logger) {
	return tag(ctx, log, tenantIDKey, "tenant_id", tenantID)
}

// WithUserID records the authenticated user on the context and on the logger
func WithUserID(ctx context.Context, log *zap.Logger, userID string) (context.Context, *zap.Logger) {
	return tag(ctx, log, userIDKey, "user_id", userID)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// GetRequestID returns the request ID recorded on the context, or ""
func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// GetTenantID returns the tenant ID recorded on the context, or ""
func GetTenantID(ctx context.Context) string {
	return stringValue(ctx, tenantIDKey)
}

// GetUserID returns the user ID recorded on the context, or ""
func GetUserID(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}
