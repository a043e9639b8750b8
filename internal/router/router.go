// Package router builds the echo instance: global middleware in order,
// then the system and API routes.
package router

import (
	"github.com/eximroyals/backend/internal/handler"
	"github.com/eximroyals/backend/internal/middleware"
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.Binder = &validation.Binder{}
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Metrics.Middleware(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.BodyLimit(),
	)

	registerSystemRoutes(r, h, mw)
	registerAPIRoutes(r.Group("/api"), s, h, mw)

	return r
}
