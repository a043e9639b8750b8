package handler

import (
	"strings"

	"github.com/eximroyals/backend/internal/validation"
)

// Request payloads. Fields carry query, form and json tags so the public
// forms can post either multipart/urlencoded bodies or plain parameters.

type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *IDRequest) Validate() error { return validation.Struct(r) }

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validation.Struct(r) }

type CategoryRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" form:"imageUrl" validate:"omitempty,max=2048"`
}

func (r *CategoryRequest) Validate() error { return validation.Struct(r) }

type UpdateCategoryRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	CategoryRequest
}

func (r *UpdateCategoryRequest) Validate() error { return validation.Struct(r) }

type CreateEnquiryRequest struct {
	FirstName string `query:"firstName" form:"firstName" json:"firstName" validate:"required,max=255"`
	LastName  string `query:"lastName" form:"lastName" json:"lastName" validate:"required,max=255"`
	Country   string `query:"country" form:"country" json:"country" validate:"omitempty,max=255"`
	Email     string `query:"email" form:"email" json:"email" validate:"required,max=255"`
	Message   string `query:"message" form:"message" json:"message" validate:"required"`
	ProductID string `query:"productId" form:"productId" json:"productId" validate:"omitempty,numeric"`
}

func (r *CreateEnquiryRequest) Validate() error { return validation.Struct(r) }

type ListProductsRequest struct {
	CategoryID string `query:"categoryId" validate:"omitempty,numeric"`
}

func (r *ListProductsRequest) Validate() error { return validation.Struct(r) }

type PageNameRequest struct {
	PageName string `param:"pageName" json:"-" validate:"required,max=100"`
}

func (r *PageNameRequest) Validate() error { return validation.Struct(r) }

type UpdateStaticPageRequest struct {
	PageName string `param:"pageName" json:"-" validate:"required,max=100"`
	Title    string `json:"title" form:"title" validate:"required,max=255"`
	Content  string `json:"content" form:"content" validate:"required"`
	Extra    string `json:"extra" form:"extra"`
}

func (r *UpdateStaticPageRequest) Validate() error { return validation.Struct(r) }

// nullIfBlank maps empty or whitespace-only input to nil.
func nullIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
