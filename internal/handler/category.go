package handler

import (
	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	Handler
	categories *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler:    NewHandler(s),
		categories: categories,
	}
}

func (h *CategoryHandler) ListCategories(c echo.Context, _ *EmptyRequest) ([]model.Category, error) {
	return h.categories.ListAll(c.Request().Context())
}

func (h *CategoryHandler) GetCategory(c echo.Context, req *IDRequest) (*model.Category, error) {
	category, err := h.categories.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, service.ErrCategoryNotFound(req.ID)
	}
	return category, nil
}

func (h *CategoryHandler) CreateCategory(c echo.Context, req *CategoryRequest) (*model.Category, error) {
	return h.categories.Create(c.Request().Context(), &model.Category{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    nullIfBlank(req.ImageURL),
	})
}

func (h *CategoryHandler) UpdateCategory(c echo.Context, req *UpdateCategoryRequest) (*model.Category, error) {
	return h.categories.Update(c.Request().Context(), req.ID, service.CategoryDetails{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    nullIfBlank(req.ImageURL),
	})
}

// DeleteCategory succeeds whether or not the category existed.
func (h *CategoryHandler) DeleteCategory(c echo.Context, req *IDRequest) error {
	return h.categories.DeleteByID(c.Request().Context(), req.ID)
}
