// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"tcnursery/internal/core/apperror"
	"tcnursery/pkg/logger"
)

// Recovery middleware recovers from panics and returns 500 error.
// Logs stack trace but never exposes internal details to client.
// It is the outermost middleware, so it writes the response itself.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", rec,
					"stack", string(debug.Stack()),
				)

				err := apperror.NewInternal(fmt.Errorf("panic: %v", rec)).
					WithDetail("request_id", c.GetString(ContextRequestID))
				_ = c.Error(err)

				if !c.Writer.Written() {
					status, body := errorBody(c, err)
					c.AbortWithStatusJSON(status, body)
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
