package routes

import (
	"time"

	"github.com/ysqsimon/Remotely/internal/api/handlers"
	"github.com/ysqsimon/Remotely/internal/api/middleware"
	"github.com/ysqsimon/Remotely/internal/assistant"
	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/llm"
	"github.com/ysqsimon/Remotely/internal/session"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, cat *catalog.Catalog, searcher *catalog.Searcher, store *session.Store, asst *assistant.Assistant, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Assistant endpoints wait on a model round-trip, everything else is local
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager, store, cat))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.GET("/jobs", handlers.JobsHandler(searcher))
		v1.GET("/jobs/:id", handlers.JobHandler(cat))
		v1.GET("/talents", handlers.TalentsHandler(searcher))
		v1.GET("/companies", handlers.CompaniesHandler(searcher))

		// Assistant routes
		asstGroup := v1.Group("/assistant")
		{
			asstGroup.POST("/chat", handlers.ChatHandler(store, asst))
			asstGroup.GET("/sessions/:id", handlers.TranscriptHandler(store))
			asstGroup.POST("/cover-letter", handlers.CoverLetterHandler(cat, asst))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Remotely Job Board",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
