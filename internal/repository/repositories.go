// Package repository handles all interactions with the database.
//
// It contains the raw SQL for every table and keeps pgx details away
// from the service layer. Each write is a single statement, so the
// statement itself is the transaction boundary.
//
// Lookups that can legitimately miss (FindByID, FindByEmail, ...)
// return a nil entity and a nil error when no row matches.
package repository

import (
	"errors"

	"github.com/eximroyals/backend/internal/server"
	"github.com/jackc/pgx/v5"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Admin      *AdminRepository
	StaticPage *StaticPageRepository
	Category   *CategoryRepository
	Product    *ProductRepository
	Enquiry    *EnquiryRepository
}

// NewRepositories wires every repository to the shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Admin:      NewAdminRepository(s),
		StaticPage: NewStaticPageRepository(s),
		Category:   NewCategoryRepository(s),
		Product:    NewProductRepository(s),
		Enquiry:    NewEnquiryRepository(s),
	}
}

// noRows turns pgx.ErrNoRows into the (nil, nil) "absent" outcome.
func noRows[T any](v *T, err error) (*T, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
