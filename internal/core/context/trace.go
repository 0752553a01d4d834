// Package context carries request-scoped values (trace and request ids) through the service layers.
package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext identifies one inbound request.
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

// NewTraceContext creates a TraceContext, keeping any ids the caller already has.
func NewTraceContext(traceID, requestID string) *TraceContext {
	if traceID == "" {
		traceID = uuid.New().String()
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return &TraceContext{
		TraceID:   traceID,
		SpanID:    uuid.New().String()[:16],
		RequestID: requestID,
	}
}
