package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/zhar97/solar-om-analytics/internal/handler"
	"github.com/zhar97/solar-om-analytics/internal/middleware"
)

// Setup registers all routes.
func Setup(
	h *server.Hertz,
	anomalyHandler *handler.AnomalyHandler,
	patternHandler *handler.PatternHandler,
	insightHandler *handler.InsightHandler,
	plantHandler *handler.PlantHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.Metrics())
	h.Use(middleware.CORS())

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// Analytics API
	api := h.Group("/api")
	{
		api.GET("/anomalies", anomalyHandler.List)
		api.GET("/anomalies/:plant_id", anomalyHandler.ListByPlant)
		api.GET("/patterns", patternHandler.List)
		api.GET("/insights", insightHandler.List)
		api.GET("/plants", plantHandler.List)
	}
}
