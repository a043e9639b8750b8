package middleware

import (
	"context"

	"github.com/eximroyals/backend/internal/logger"
	"github.com/eximroyals/backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	AdminIDKey    = "admin_id"
	AdminEmailKey = "admin_email"
	LoggerKey     = "logger"
)

type loggerCtxKey struct{}

// ContextEnhancer attaches a request-scoped logger carrying the request id,
// route and trace metadata.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			setLogger(c, &contextLogger)

			return next(c)
		}
	}
}

// setLogger stores l in both the echo context and the request context.
func setLogger(c echo.Context, l *zerolog.Logger) {
	c.Set(LoggerKey, l)
	ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, l)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetAdminID reports the authenticated admin, if RequireAuth ran.
func GetAdminID(c echo.Context) (int64, bool) {
	id, ok := c.Get(AdminIDKey).(int64)
	return id, ok
}

func GetAdminEmail(c echo.Context) string {
	if email, ok := c.Get(AdminEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetLogger returns the request logger, or a no-op logger outside a request.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}

// LoggerFromContext is the context.Context counterpart of GetLogger for
// code below the handler layer.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return logger
	}
	logger := zerolog.Nop()
	return &logger
}
