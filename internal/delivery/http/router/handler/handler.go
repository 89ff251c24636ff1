// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"bizdir/internal/delivery/http/response"
	domainerrors "bizdir/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// documentIDParam reads a path parameter that must be a 24-hex document ID.
// Validation happens before any store access; a malformed ID never reaches
// the repository layer.
func documentIDParam(c echo.Context, name string) (string, error) {
	id := c.Param(name)
	if !validDocumentID(id) {
		return "", domainerrors.ErrInvalidID.WithDetails("parameter " + name)
	}

	return id, nil
}

func validDocumentID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}
