package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fixmygame/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service errors onto the uniform error payload.
// Unrecognized errors are logged with detail and surfaced as a generic 500
// so infrastructure failures never read as admissions.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return writeError(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrUpstream):
		return writeError(c, http.StatusBadGateway, "diagnosis failed")
	default:
		c.Logger().Errorf("internal error: %v", err)
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}
