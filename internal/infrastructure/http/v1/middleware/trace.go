package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "tcnursery/internal/core/context"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"

	// Gin context keys
	ContextRequestID = "request_id"
	ContextTraceID   = "trace_id"
)

// Trace middleware adds request tracing context.
// Extracts or generates trace IDs for distributed tracing.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		trace := appctx.NewTraceContext(c.GetHeader(HeaderTraceID), c.GetHeader(HeaderRequestID))

		ctx := appctx.WithTrace(c.Request.Context(), trace)
		c.Request = c.Request.WithContext(ctx)

		// Store in gin context for easy access
		c.Set(ContextTraceID, trace.TraceID)
		c.Set(ContextRequestID, trace.RequestID)

		c.Header(HeaderRequestID, trace.RequestID)
		c.Header(HeaderTraceID, trace.TraceID)

		c.Next()
	}
}
