package middleware

import (
	"errors"
	"strings"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/lib/security"
	"github.com/eximroyals/backend/internal/server"
	"github.com/labstack/echo/v4"
)

type TokenParser interface {
	Parse(token string) (*security.AdminClaims, error)
}

// AuthMiddleware guards admin routes with the bearer tokens issued on login.
type AuthMiddleware struct {
	server *server.Server
	tokens TokenParser
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: security.NewTokenManager(s.Config.Auth.SecretKey, s.Config.Auth.TokenTTL),
	}
}

// RequireAuth rejects requests without a valid "Authorization: Bearer"
// token. On success the admin id and email are available through
// GetAdminID and GetAdminEmail.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errs.NewUnauthorizedError("Missing bearer token", true)
		}

		claims, err := auth.tokens.Parse(token)
		if err != nil {
			GetLogger(c).Warn().Err(err).Msg("rejected admin token")
			if errors.Is(err, security.ErrExpiredToken) {
				return errs.NewUnauthorizedError("Session expired, please log in again", true)
			}
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		adminID, err := claims.AdminID()
		if err != nil {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		c.Set(AdminIDKey, adminID)
		c.Set(AdminEmailKey, claims.Email)

		l := GetLogger(c).With().Int64("admin_id", adminID).Logger()
		setLogger(c, &l)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
