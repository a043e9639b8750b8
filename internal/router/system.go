package router

import (
	"github.com/eximroyals/backend/internal/handler"
	"github.com/eximroyals/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(mw.Metrics.Handler()))

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
