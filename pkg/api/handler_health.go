package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-research/maestro/pkg/database"
)

// healthHandler handles GET /health: liveness plus a database ping.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// systemHealthHandler handles GET /api/v1/system/health: worker pool state,
// queue depth and realtime connection count.
func (s *Server) systemHealthHandler(c *gin.Context) {
	resp := gin.H{}

	status := http.StatusOK
	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			status = http.StatusServiceUnavailable
		}
	}
	if s.connManager != nil {
		resp["ws_connections"] = s.connManager.ActiveConnections()
	}

	c.JSON(status, resp)
}
