package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
	"github.com/SscSPs/cheque_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps a service error to an HTTP status. Unknown errors are 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInactive),
		errors.Is(err, apperrors.ErrOutOfRange),
		errors.Is(err, apperrors.ErrIneligibleCashIn),
		errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicateNumber),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrAlreadyCashed),
		errors.Is(err, apperrors.ErrHasDependents),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope. Domain errors carry their message to the caller;
// anything else is logged and reported as internalMsg.
func respondError(c *gin.Context, err error, internalMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.Envelope{Success: false, Error: internalMsg})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.Envelope{Success: false, Error: err.Error()})
}

// respondBindError reports a malformed body or query string.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Envelope{Success: false, Error: "Invalid request format: " + err.Error()})
}

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.Envelope{Success: true, Data: data, Message: message})
}

// requireUserID fetches the authenticated user, answering 401 when it is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Envelope{Success: false, Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
