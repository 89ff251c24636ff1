package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/response"
	domainerrors "bizdir/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors to the unified response envelope. It is
// installed as echo's HTTPErrorHandler, so every handler just returns errors.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Internal-class errors keep their details in the logs only.
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.String("errorCode", appErr.ErrorCode()),
				slog.Any("error", err),
			)
			details = ""
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}
