package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event-intake/internal/handlers"
)

// NewRouter wires the public endpoints.
// Public: /health, /events
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())

	// Liveness: confirms the process is running. The service has no
	// external dependencies, so readiness is the same check.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// All intake endpoints live under the /events prefix.
	events := r.Group("/events")
	handlers.RegisterEventRoutes(events)

	return r
}
