package router

import (
	"github.com/gin-gonic/gin"

	"harvester/internal/config"
	"harvester/internal/handler"
	"harvester/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	workspaceH *handler.WorkspaceHandler,
	exportH *handler.ExportHandler,
	activityH *handler.ActivityHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	workspace := v1.Group("/workspace")
	workspace.POST("/prepare", workspaceH.Prepare)
	workspace.POST("/extract", workspaceH.Extract)

	export := v1.Group("/export")
	export.POST("/csv", exportH.CSV)
	export.POST("/xlsx", exportH.XLSX)

	v1.GET("/activity", activityH.Recent)
	v1.DELETE("/activity", activityH.ClearRecent)
	v1.GET("/stats", activityH.Stats)
	v1.DELETE("/stats", activityH.ResetStats)

	return r
}
