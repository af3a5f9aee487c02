package router

import (
	"github.com/gin-gonic/gin"

	"gstrex/internal/config"
	"gstrex/internal/handler"
	"gstrex/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	collectionH *handler.CollectionHandler,
	queryH *handler.QueryHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// Collection exploration
	api.GET("/collections", collectionH.List)
	api.GET("/fields", collectionH.Fields)
	api.POST("/query", queryH.Query)
	api.POST("/export", queryH.Export)
	api.POST("/receipt/:collection/:documentId", queryH.Receipt)

	// Reports
	reports := api.Group("/report")
	reports.POST("/gstr3b", reportH.GenerateGSTR3B)
	reports.GET("/liability", reportH.Liability)
	reports.GET("/summary", reportH.Summary)

	return r
}
