package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nwatkins/driftloop/internal/api/handler"
	"github.com/nwatkins/driftloop/internal/api/middleware"
	"github.com/nwatkins/driftloop/internal/config"
	"github.com/nwatkins/driftloop/internal/logger"
	"github.com/nwatkins/driftloop/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	pipeline *service.PipelineService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	healthHandler := handler.NewHealthHandler()
	loopHandler := handler.NewLoopHandler(pipeline)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Loop generation runs
		v1.POST("/loops", loopHandler.CreateLoop)
		v1.GET("/loops", loopHandler.ListLoops)
		v1.GET("/loops/:id", loopHandler.GetLoop)

		// Live preview stream (multipart JPEG)
		v1.GET("/preview", loopHandler.Preview)

		// Trigger catalog
		v1.GET("/triggers", loopHandler.ListTriggers)
	}

	return r
}
