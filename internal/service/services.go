// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated input from handlers, applies the business rules and
// orchestrates the repositories. Every collaborator is passed in
// through a constructor as a small interface.
package service

import (
	"github.com/eximroyals/backend/internal/lib/job"
	"github.com/eximroyals/backend/internal/lib/security"
	"github.com/eximroyals/backend/internal/repository"
	"github.com/eximroyals/backend/internal/server"
)

type Services struct {
	Auth       *AuthService
	Category   *CategoryService
	Enquiry    *EnquiryService
	Product    *ProductService
	StaticPage *StaticPageService
	Seeder     *Seeder
	Job        *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	hasher := security.NewBcryptHasher(security.DefaultBcryptCost)
	tokens := security.NewTokenManager(s.Config.Auth.SecretKey, s.Config.Auth.TokenTTL)

	return &Services{
		Auth:       NewAuthService(repos.Admin, hasher, tokens),
		Category:   NewCategoryService(repos.Category),
		Enquiry:    NewEnquiryService(s.Logger, repos.Enquiry, repos.Product, s.Job),
		Product:    NewProductService(repos.Product),
		StaticPage: NewStaticPageService(repos.StaticPage),
		Seeder:     NewSeeder(s.Logger, s.Config.Seed, repos.Admin, repos.StaticPage, hasher),
		Job:        s.Job,
	}, nil
}
