package service

import (
	"context"

	"github.com/eximroyals/backend/internal/model"
)

type ProductRepository interface {
	FindAll(ctx context.Context, categoryID *int64) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
}

// ProductService exposes the read side of the catalogue.
type ProductService struct {
	products ProductRepository
}

func NewProductService(products ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context, categoryID *int64) ([]model.Product, error) {
	products, err := s.products.FindAll(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// GetByID returns nil, nil when no product has the id.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.products.FindByID(ctx, id)
}
