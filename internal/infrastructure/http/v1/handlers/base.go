// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tcnursery/internal/core/apperror"
	appctx "tcnursery/internal/core/context"
	"tcnursery/internal/core/id"
	"tcnursery/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseID parses the :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (id.ID, bool) {
	recordID, err := parseRecordID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return id.ID{}, false
	}
	return recordID, true
}

func parseRecordID(raw string) (id.ID, error) {
	recordID, err := id.Parse(raw)
	if err != nil {
		return id.ID{}, apperror.NewInvalidField("id", "invalid id format", raw)
	}
	return recordID, nil
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// GetRequestID extracts request ID from request context.
func (h *BaseHandler) GetRequestID(c *gin.Context) string {
	return appctx.GetRequestID(c.Request.Context())
}

// Created sends 201 response with data.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// List sends a paginated list.
func (h *BaseHandler) List(c *gin.Context, items any, total int64, limit, offset int) {
	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	})
}
