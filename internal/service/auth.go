package service

import (
	"context"
	"strings"
	"time"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/model"
)

type AdminRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, admin *model.Admin) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

type TokenIssuer interface {
	Generate(adminID int64, email string) (string, time.Time, error)
}

// AuthService authenticates admins against the locally stored bcrypt hash
// and issues signed access tokens.
type AuthService struct {
	admins AdminRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(admins AdminRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		admins: admins,
		hasher: hasher,
		tokens: tokens,
	}
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Admin     *model.Admin `json:"admin"`
}

// Login does not reveal whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if admin == nil || !s.hasher.Matches(admin.Password, password) {
		return nil, errs.NewUnauthorizedError("Invalid email or password", true)
	}

	token, expiresAt, err := s.tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	}, nil
}

// Me loads the admin an authenticated request belongs to. The account may
// have been removed after the token was issued.
func (s *AuthService) Me(ctx context.Context, adminID int64) (*model.Admin, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errs.NewUnauthorizedError("Admin account no longer exists", true)
	}
	return admin, nil
}
