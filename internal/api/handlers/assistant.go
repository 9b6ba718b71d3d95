package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ysqsimon/Remotely/internal/assistant"
	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/internal/session"
	"github.com/ysqsimon/Remotely/pkg/models"
	"github.com/ysqsimon/Remotely/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// ChatHandler runs one assistant turn: it resolves the session, hands the
// transcript and utterance to the assistant, and persists both sides of the
// exchange before replying.
func ChatHandler(store *session.Store, asst *assistant.Assistant) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Message must not be empty",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		// Unknown or expired sessions silently start fresh rather than
		// failing the turn.
		sessionID := req.SessionID
		var transcript []models.ChatMessage
		if sessionID != "" {
			if t, ok := store.Transcript(sessionID); ok {
				transcript = t
			} else {
				sessionID = ""
			}
		}
		if sessionID == "" {
			sessionID = store.Create()
		}

		userMsg := models.ChatMessage{
			ID:   utils.GenerateMessageID(),
			Role: models.ChatRoleUser,
			Text: message,
		}

		aiMsg, err := asst.Converse(c.Request().Context(), transcript, message)
		if err != nil {
			logger.Error("Assistant turn failed", map[string]interface{}{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			})
			status := http.StatusInternalServerError
			var customErr *utils.CustomError
			if errors.As(err, &customErr) {
				status = customErr.Code
			}
			return c.JSON(status, models.ErrorResponse{
				Error:     "assistant_error",
				Message:   "Failed to process the message",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Assistant turn completed", map[string]interface{}{
			"request_id": requestID,
			"session_id": sessionID,
			"items":      aiMsg.Data.Len(),
		})

		if err := store.AppendTurn(sessionID, userMsg, *aiMsg); err != nil {
			logger.Warn("Failed to persist chat turn", map[string]interface{}{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}

		return c.JSON(http.StatusOK, models.ChatResponse{
			SessionID: sessionID,
			Message:   *aiMsg,
			RequestID: requestID,
		})
	}
}

// TranscriptHandler returns the accumulated transcript of a search session
func TranscriptHandler(store *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Param("id")
		messages, ok := store.Transcript(sessionID)
		if !ok {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "session_not_found",
				Message:   "No session found with ID: " + sessionID,
				RequestID: utils.GenerateRequestID(),
				Timestamp: time.Now(),
			})
		}
		return c.JSON(http.StatusOK, models.TranscriptResponse{
			SessionID: sessionID,
			Messages:  messages,
		})
	}
}

// CoverLetterHandler drafts a cover letter for a catalog job
func CoverLetterHandler(cat *catalog.Catalog, asst *assistant.Assistant) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		var req models.CoverLetterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		job := cat.JobByID(req.JobID)
		if job == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "job_not_found",
				Message:   "No job found with ID: " + req.JobID,
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		letter := asst.DraftCoverLetter(c.Request().Context(), job, req.Skills)

		return c.JSON(http.StatusOK, models.CoverLetterResponse{
			JobID:     job.ID,
			Letter:    letter,
			RequestID: requestID,
		})
	}
}
