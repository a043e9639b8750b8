package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/eximroyals/backend/internal/middleware"
	"github.com/eximroyals/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// dependencyCheck pings one backing service.
type dependencyCheck struct {
	name string
	// critical checks turn the overall status unhealthy; others only
	// report. Redis only backs enquiry notifications.
	critical bool
	ping     func(ctx context.Context) error
}

type HealthHandler struct {
	Handler
	checks  []dependencyCheck
	timeout time.Duration
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: 5 * time.Second,
	}

	obs := s.Config.Observability
	if obs != nil {
		if !obs.HealthChecks.Enabled {
			return h
		}
		h.timeout = obs.HealthChecks.Timeout
	}

	enabled := func(name string) bool {
		return obs == nil || len(obs.HealthChecks.Checks) == 0 || slices.Contains(obs.HealthChecks.Checks, name)
	}

	if s.DB != nil && enabled("database") {
		h.checks = append(h.checks, dependencyCheck{
			name:     "database",
			critical: true,
			ping:     s.DB.Pool.Ping,
		})
	}
	if s.Redis != nil && enabled("redis") {
		h.checks = append(h.checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() },
		})
	}

	return h
}

// CheckHealth answers 200 when every critical dependency responds and 503
// otherwise. Each check is reported with its latency.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	checks := make(map[string]interface{}, len(h.checks))
	healthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()

		result := map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}

		if err != nil {
			result["status"] = "unhealthy"
			result["error"] = err.Error()
			if check.critical {
				healthy = false
			}

			logger.Error().Err(err).Str("check", check.name).Dur("response_time", time.Since(checkStart)).Msg("health check failed")
			h.recordFailure(check.name, err, time.Since(checkStart))
		}

		checks[check.name] = result
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, err error, elapsed time.Duration) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}
	app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
