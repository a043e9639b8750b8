package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*AuthService, *model.Admin) {
	t.Helper()
	admins := newFakeAdminRepository()
	admin := &model.Admin{Email: "admin@dndglobal.com", Password: "hashed:Admin@123"}
	require.NoError(t, admins.Create(context.Background(), admin))

	expires := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return NewAuthService(admins, plainHasher{}, fakeTokenIssuer{expiresAt: expires}), admin
}

func TestLogin(t *testing.T) {
	svc, admin := newTestAuthService(t)

	result, err := svc.Login(context.Background(), " admin@dndglobal.com ", "Admin@123")
	require.NoError(t, err)
	assert.Equal(t, "token-for-admin@dndglobal.com", result.Token)
	assert.Equal(t, admin.ID, result.Admin.ID)
	assert.False(t, result.ExpiresAt.IsZero())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "nobody@dndglobal.com", password: "Admin@123"},
		{name: "wrong password", email: "admin@dndglobal.com", password: "admin123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)

			_, err := svc.Login(context.Background(), tc.email, tc.password)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
			assert.Equal(t, "Invalid email or password", httpErr.Message)
		})
	}
}

func TestMe(t *testing.T) {
	svc, admin := newTestAuthService(t)

	found, err := svc.Me(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, found.Email)

	_, err = svc.Me(context.Background(), 404)
	assert.Error(t, err)
}
