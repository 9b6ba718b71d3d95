package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ysqsimon/Remotely/internal/api/routes"
	"github.com/ysqsimon/Remotely/internal/assistant"
	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/llm"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/internal/session"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Remotely job board")

	// Build the in-memory catalog
	cat := catalog.Build(cfg)
	searcher := catalog.NewSearcher(cat, cfg)
	logger.Info("Catalog built", map[string]interface{}{
		"jobs":      len(cat.Jobs),
		"talents":   len(cat.Talents),
		"companies": len(cat.Companies),
	})

	// Initialize LLM manager; without credentials the assistant runs offline
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize session store
	store := session.NewStore(cfg)
	ctx := context.Background()
	if err := store.Start(ctx); err != nil {
		logger.Error("Failed to start session store", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	asst := assistant.New(cat, searcher, llmManager)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, cat, searcher, store, asst, llmManager)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := store.Stop(shutdownCtx); err != nil {
			logger.Error("Error stopping session store", map[string]interface{}{"error": err.Error()})
		}

		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
