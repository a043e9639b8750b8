package service

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/model"
)

type StaticPageRepository interface {
	FindAll(ctx context.Context) ([]model.StaticPage, error)
	FindByPageName(ctx context.Context, pageName string) (*model.StaticPage, error)
	Create(ctx context.Context, page *model.StaticPage) error
	Update(ctx context.Context, page *model.StaticPage) error
}

type StaticPageService struct {
	pages StaticPageRepository
}

func NewStaticPageService(pages StaticPageRepository) *StaticPageService {
	return &StaticPageService{pages: pages}
}

// StaticPageDetails carries the editable fields of a page.
type StaticPageDetails struct {
	Title   string
	Content string
	Extra   *string
}

func (s *StaticPageService) ListAll(ctx context.Context) ([]model.StaticPage, error) {
	pages, err := s.pages.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if pages == nil {
		pages = []model.StaticPage{}
	}
	return pages, nil
}

// GetByPageName returns nil, nil when the page does not exist.
func (s *StaticPageService) GetByPageName(ctx context.Context, pageName string) (*model.StaticPage, error) {
	return s.pages.FindByPageName(ctx, pageName)
}

// Update replaces title, content and extra of an existing page.
func (s *StaticPageService) Update(ctx context.Context, pageName string, details StaticPageDetails) (*model.StaticPage, error) {
	page, err := s.pages.FindByPageName(ctx, pageName)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrStaticPageNotFound(pageName)
	}

	page.Title = details.Title
	page.Content = details.Content
	page.Extra = details.Extra

	if err := s.pages.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func ErrStaticPageNotFound(pageName string) *errs.HTTPError {
	code := "STATIC_PAGE_NOT_FOUND"
	return errs.NewNotFoundError(fmt.Sprintf("Page not found: %s", pageName), true, &code)
}
