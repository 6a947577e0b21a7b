package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"tutorial-service/internal/domain/apperrors"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Message    string `json:"message"`
}

// NewHTTPErrorHandler maps the application failure kinds to status codes.
// Collaborator faults are logged with their cause but surface as a bare 500;
// internal detail never reaches the client.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var httpErr *echo.HTTPError
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials),
			errors.Is(err, apperrors.ErrUnauthorized):
			status = http.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, apperrors.ErrNotFound):
			status = http.StatusNotFound
			message = err.Error()
		case errors.Is(err, apperrors.ErrConflict):
			status = http.StatusConflict
			message = err.Error()
		case errors.Is(err, apperrors.ErrTooManyRequests):
			status = http.StatusTooManyRequests
			message = err.Error()
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		default:
			logger.Error("unhandled error", zap.Error(err))
		}

		if writeErr := c.JSON(status, errorResponse{
			StatusCode: status,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Message:    message,
		}); writeErr != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
