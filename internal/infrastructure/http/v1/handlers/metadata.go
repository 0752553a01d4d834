package handlers

import (
	"github.com/gin-gonic/gin"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/metadata"
)

// MetadataHandler serves register descriptions.
type MetadataHandler struct {
	*BaseHandler
	registry *metadata.Registry
}

// NewMetadataHandler creates a new metadata handler.
func NewMetadataHandler(base *BaseHandler, registry *metadata.Registry) *MetadataHandler {
	return &MetadataHandler{
		BaseHandler: base,
		registry:    registry,
	}
}

// ListEntities returns all register definitions.
// GET /api/v1/meta
func (h *MetadataHandler) ListEntities(c *gin.Context) {
	h.OK(c, h.registry.List())
}

// GetEntity returns the full metadata for a specific register.
// GET /api/v1/meta/:name
func (h *MetadataHandler) GetEntity(c *gin.Context) {
	name := c.Param("name")
	def, ok := h.registry.Get(name)
	if !ok {
		h.Error(c, apperror.NewNotFound("register", name))
		return
	}
	h.OK(c, def)
}
