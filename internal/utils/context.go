// Package utils holds small helpers shared by the server and the client:
// context keys, JSON response writing, the resty HTTP client wrapper and
// the UUID generator.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored by this
// package never collide with string keys set elsewhere.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDHeader is the HTTP header carrying the request trace identifier.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey is the context key holding the request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx.
// ok is false when none is stored or the stored value is empty.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
