// Package http wires handlers into the Echo server.
package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fixmygame/backend/internal/handler"
)

// NewRouter builds the Echo instance with all routes registered. staticDir
// may be empty to skip frontend serving.
func NewRouter(diagnoseHandler *handler.DiagnoseHandler, staticDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	diagnoseHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
