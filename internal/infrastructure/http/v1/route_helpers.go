// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRouteHandler defines the interface for register handlers.
// All register handlers must implement these methods.
type RegisterRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Filter(c *gin.Context)
	Select(c *gin.Context)
	Audit(c *gin.Context)
}

// RegisterRegisterRoutes registers CRUD, filter bar, record selector and audit routes for a register.
//
// Usage:
//
//	handler := handlers.NewMediaHandler(baseHandler, set.Media, journal)
//	RegisterRegisterRoutes(registers.Group("/media"), handler)
func RegisterRegisterRoutes(group *gin.RouterGroup, handler RegisterRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/filter", handler.Filter)
	group.GET("/select", handler.Select)
	group.GET("/audit", handler.Audit)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
