package service

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/model"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	DeleteByID(ctx context.Context, id int64) error
}

type CategoryService struct {
	categories CategoryRepository
}

func NewCategoryService(categories CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// CategoryDetails carries the fields an update may change. A nil ImageURL
// keeps the stored image.
type CategoryDetails struct {
	Title       string
	Description string
	ImageURL    *string
}

func (s *CategoryService) ListAll(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

// GetByID returns nil, nil when no category has the id.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update overwrites title and description, and the image only when a new
// one is supplied. A missing category is a NotFound error.
func (s *CategoryService) Update(ctx context.Context, id int64, details CategoryDetails) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound(id)
	}

	category.Title = details.Title
	category.Description = details.Description
	if details.ImageURL != nil {
		category.ImageURL = details.ImageURL
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteByID(ctx context.Context, id int64) error {
	return s.categories.DeleteByID(ctx, id)
}

func ErrCategoryNotFound(id int64) *errs.HTTPError {
	code := "CATEGORY_NOT_FOUND"
	return errs.NewNotFoundError(fmt.Sprintf("Category not found with id: %d", id), true, &code)
}
