package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tcnursery/internal/core/apperror"
	"tcnursery/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		status, body := errorBody(c, err)
		c.JSON(status, body)
	}
}

// errorBody maps err to the response status and problem body.
func errorBody(c *gin.Context, err error) (int, gin.H) {
	if appErr, ok := apperror.AsAppError(err); ok {
		if appErr.Err != nil {
			logger.Error(c.Request.Context(), "request error",
				"code", appErr.Code,
				"cause", appErr.Err,
			)
		}
		return appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		}
	}

	// Unknown error - log and return generic message
	logger.Error(c.Request.Context(), "unhandled error", "error", err)

	return http.StatusInternalServerError, gin.H{
		"code":    apperror.CodeInternal,
		"message": "Internal server error",
		"details": map[string]any{
			"request_id": c.GetString(ContextRequestID),
		},
	}
}
