// Package reqctx carries request IDs through context.Context values.
package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type so keys cannot collide across packages.
type contextKey int

const requestIDKey contextKey = iota

// NewRequestID generates a unique request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(parent context.Context, requestID string) context.Context {
	return context.WithValue(parent, requestIDKey, requestID)
}

// RequestID extracts the request ID from ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
