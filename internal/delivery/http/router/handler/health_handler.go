// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"openspace/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness. It carries no dependencies so the
// router can register it directly.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "ok",
	}, "Service is healthy")
}
