// Package context carries request-scoped values shared by logging and HTTP layers.
package context

import (
	"context"

	"supplierintake/internal/core/id"
)

// TraceContext contains request tracing information.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceContextKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns TraceContext from context.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns request ID from context or empty string.
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// NewTraceContext creates a TraceContext with generated IDs.
// requestID is kept when non-empty.
func NewTraceContext(requestID string) *TraceContext {
	if requestID == "" {
		requestID = id.New().String()
	}
	return &TraceContext{
		TraceID:   id.New().String(),
		SpanID:    id.New().String()[:16],
		RequestID: requestID,
	}
}
