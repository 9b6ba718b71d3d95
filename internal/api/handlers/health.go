package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/internal/llm"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/internal/session"
	"github.com/ysqsimon/Remotely/pkg/models"
	"github.com/ysqsimon/Remotely/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0", // TODO: Get from build info
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The service is ready
// even without an LLM provider; the assistant just runs in offline mode.
func ReadinessHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		llmStatus := "offline"
		if llmManager.Enabled() {
			llmStatus = llmManager.GetProviderName()
		}

		response := models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":     "ok",
				"catalog": "ok",
				"llm":     llmStatus,
				"uptime":  utils.FormatDuration(time.Since(startTime)),
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}

// StatusHandler provides detailed service status
func StatusHandler(llmManager *llm.Manager, store *session.Store, cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID})

		mode := "offline"
		if llmManager.Enabled() {
			mode = llmManager.GetProviderName()
		}

		response := models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":             "operational",
				"llm_mode":        mode,
				"active_sessions": strconv.Itoa(store.Count()),
				"jobs":            strconv.Itoa(len(cat.Jobs)),
				"talents":         strconv.Itoa(len(cat.Talents)),
				"companies":       strconv.Itoa(len(cat.Companies)),
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
