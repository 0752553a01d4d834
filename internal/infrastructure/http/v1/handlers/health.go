package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is the application version reported by /health/info.
var Version = "0.1.0"

// ReadinessCheck reports whether a dependency is ready; a nil error means healthy.
type ReadinessCheck func() error

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	env     string
	started time.Time
	checks  map[string]ReadinessCheck
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(env string, checks map[string]ReadinessCheck) *HealthHandler {
	return &HealthHandler{
		env:     env,
		started: time.Now(),
		checks:  checks,
	}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	results := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(); err != nil {
			results[name] = "unhealthy: " + err.Error()
			healthy = false
			continue
		}
		results[name] = "healthy"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": results,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": results,
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "tcnursery",
		"version": Version,
		"env":     h.env,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"storage": "memory",
	})
}
