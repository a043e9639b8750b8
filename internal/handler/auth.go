package handler

import (
	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/middleware"
	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*service.LoginResult, error) {
	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(c).Info().Int64("admin_id", result.Admin.ID).Msg("admin logged in")
	return result, nil
}

// Me returns the admin behind the bearer token. Only mounted behind RequireAuth.
func (h *AuthHandler) Me(c echo.Context, _ *EmptyRequest) (*model.Admin, error) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}
	return h.auth.Me(c.Request().Context(), adminID)
}
