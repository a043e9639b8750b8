package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eximroyals/backend/internal/config"
	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/lib/security"
	"github.com/eximroyals/backend/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-signing-secret"

func newTestServer() *server.Server {
	logger := zerolog.New(io.Discard)
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "local"},
			Auth:    config.AuthConfig{SecretKey: testSecret, TokenTTL: time.Hour},
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(RequestID())
	e.Use(NewContextEnhancer(s).EnhanceContext())
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAuth(t *testing.T) {
	s := newTestServer()
	tokens := security.NewTokenManager(testSecret, time.Hour)
	valid, _, err := tokens.Generate(7, "admin@dndglobal.com")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(s)
			auth := NewAuthMiddleware(s)
			e.GET("/private", func(c echo.Context) error {
				id, ok := GetAdminID(c)
				require.True(t, ok)
				return c.JSON(http.StatusOK, map[string]any{"id": id, "email": GetAdminEmail(c)})
			}, auth.RequireAuth)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"email":"admin@dndglobal.com"}`, rec.Body.String())
			} else {
				assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
			}
		})
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "http error",
			err:        errs.NewNotFoundError("Category not found with id: 5", true, nil),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "database unique violation",
			err:        &pgconn.PgError{Code: "23505", TableName: "static_pages", ConstraintName: "static_pages_page_name_key"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "STATIC_PAGE_ALREADY_EXISTS",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(newTestServer())
			e.GET("/boom", func(c echo.Context) error { return tc.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	e := newTestEcho(newTestServer())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestRequestIDPropagation(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestPerIPRateLimit(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/enquiries", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimitMiddleware(s).PerIP(1))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/enquiries", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestHTTPMetrics(t *testing.T) {
	e := newTestEcho(newTestServer())
	m := NewHTTPMetrics("test")
	e.Use(m.Middleware())
	e.GET("/api/categories/:id", func(c echo.Context) error {
		return errs.NewNotFoundError("missing", true, nil)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/categories/9", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(body,
		`eximroyals_http_requests_total{environment="test",method="GET",path="/api/categories/:id",status="404"} 1`), body)
}
