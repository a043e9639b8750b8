package handler

import (
	"fmt"
	"strconv"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context, req *ListProductsRequest) ([]model.Product, error) {
	var categoryID *int64
	if req.CategoryID != "" {
		id, err := strconv.ParseInt(req.CategoryID, 10, 64)
		if err != nil {
			return nil, errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
				{Field: "categoryId", Error: "must be a whole number"},
			}, nil)
		}
		categoryID = &id
	}

	return h.products.List(c.Request().Context(), categoryID)
}

func (h *ProductHandler) GetProduct(c echo.Context, req *IDRequest) (*model.Product, error) {
	product, err := h.products.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		code := "PRODUCT_NOT_FOUND"
		return nil, errs.NewNotFoundError(fmt.Sprintf("Product not found with id: %d", req.ID), true, &code)
	}
	return product, nil
}
