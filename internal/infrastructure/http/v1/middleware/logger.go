package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tcnursery/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and status.
// The request-scoped logger is also placed in the context for handlers and services.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		reqLog := log.WithContext(c.Request.Context())
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLog))

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			fields = append(fields, "error", errs)
		}

		switch {
		case status >= 500:
			reqLog.Errorw("http request", fields...)
		case status >= 400:
			reqLog.Warnw("http request", fields...)
		default:
			reqLog.Infow("http request", fields...)
		}
	}
}
