package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dialectic-dev/dialectic/pkg/database"
	"github.com/dialectic-dev/dialectic/pkg/version"
)

// Health handles GET /healthz: database ping plus registry stats.
func (s *Server) Health(c *gin.Context) {
	body := gin.H{
		"status":          "healthy",
		"version":         version.Full(),
		"active_sessions": s.registry.ActiveCount(),
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(ctx, s.db.DB())
		body["database"] = dbHealth
		if err != nil {
			body["status"] = "unhealthy"
			body["error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}

	c.JSON(http.StatusOK, body)
}
