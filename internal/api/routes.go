package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler, metricsHandler http.Handler) {

	// --- Website generation ---
	websiteGroup := router.Group("/api/website")
	{
		websiteGroup.POST("/generate", h.GenerateWebsite)
	}

	// --- Observability ---
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// --- Simple health check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
