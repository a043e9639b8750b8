package service

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/config"
	"github.com/eximroyals/backend/internal/model"
	"github.com/rs/zerolog"
)

const (
	DefaultAdminEmail    = "admin@dndglobal.com"
	DefaultAdminPassword = "Admin@123"
)

type defaultPage struct {
	pageName string
	title    string
	content  string
}

var defaultPages = []defaultPage{
	{
		pageName: "about-us",
		title:    "About Exim Royals",
		content:  "Welcome to Exim Royals, India's premier agro-export company.",
	},
	{
		pageName: "why-choose-us",
		title:    "Why Choose Us",
		content:  "We offer the best quality products, reliable logistics, and competitive pricing.",
	},
}

// Seeder inserts the initial admin account and the default static pages.
// Each row is inserted only when absent, so running it on every start is safe.
type Seeder struct {
	logger *zerolog.Logger
	cfg    config.SeedConfig
	admins AdminRepository
	pages  StaticPageRepository
	hasher PasswordHasher
}

func NewSeeder(logger *zerolog.Logger, cfg config.SeedConfig, admins AdminRepository, pages StaticPageRepository, hasher PasswordHasher) *Seeder {
	return &Seeder{
		logger: logger,
		cfg:    cfg,
		admins: admins,
		pages:  pages,
		hasher: hasher,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	for _, p := range defaultPages {
		if err := s.seedPage(ctx, p); err != nil {
			return fmt.Errorf("seeding page %s: %w", p.pageName, err)
		}
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	email := s.cfg.AdminEmail
	if email == "" {
		email = DefaultAdminEmail
	}
	password := s.cfg.AdminPassword
	if password == "" {
		password = DefaultAdminPassword
	}

	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := s.admins.Create(ctx, &model.Admin{Email: email, Password: hash}); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("Seeded admin account")
	return nil
}

func (s *Seeder) seedPage(ctx context.Context, p defaultPage) error {
	existing, err := s.pages.FindByPageName(ctx, p.pageName)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	page := &model.StaticPage{
		PageName: p.pageName,
		Title:    p.title,
		Content:  p.content,
	}
	if err := s.pages.Create(ctx, page); err != nil {
		return err
	}

	s.logger.Info().Str("page_name", p.pageName).Msg("Seeded static page")
	return nil
}
