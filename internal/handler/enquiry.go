package handler

import (
	"strconv"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type EnquiryHandler struct {
	Handler
	enquiries *service.EnquiryService
}

func NewEnquiryHandler(s *server.Server, enquiries *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		Handler:   NewHandler(s),
		enquiries: enquiries,
	}
}

// CreateEnquiry stores a public contact-form submission. An unknown
// productId is not an error: the enquiry is stored without a product.
func (h *EnquiryHandler) CreateEnquiry(c echo.Context, req *CreateEnquiryRequest) (*model.Enquiry, error) {
	var productID *int64
	if req.ProductID != "" {
		id, err := strconv.ParseInt(req.ProductID, 10, 64)
		if err != nil {
			return nil, errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
				{Field: "productId", Error: "must be a whole number"},
			}, nil)
		}
		productID = &id
	}

	enquiry := model.NewEnquiry(req.FirstName, req.LastName, nullIfBlank(req.Country), req.Email, req.Message)

	return h.enquiries.Create(c.Request().Context(), enquiry, productID)
}

func (h *EnquiryHandler) ListEnquiries(c echo.Context, _ *EmptyRequest) ([]model.Enquiry, error) {
	return h.enquiries.ListAll(c.Request().Context())
}
