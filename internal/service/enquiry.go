package service

import (
	"context"

	"github.com/eximroyals/backend/internal/lib/job"
	"github.com/eximroyals/backend/internal/model"
	"github.com/rs/zerolog"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *model.Enquiry) error
	FindAllOrderByCreatedAtDesc(ctx context.Context) ([]model.Enquiry, error)
}

// ProductFinder resolves a product by id, returning nil, nil when absent.
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
}

// EnquiryNotifier schedules the owner notification for a stored enquiry.
type EnquiryNotifier interface {
	NotifyEnquiry(ctx context.Context, payload job.EnquiryNotificationPayload) error
}

type EnquiryService struct {
	logger    *zerolog.Logger
	enquiries EnquiryRepository
	products  ProductFinder
	notifier  EnquiryNotifier
}

func NewEnquiryService(logger *zerolog.Logger, enquiries EnquiryRepository, products ProductFinder, notifier EnquiryNotifier) *EnquiryService {
	return &EnquiryService{
		logger:    logger,
		enquiries: enquiries,
		products:  products,
		notifier:  notifier,
	}
}

// Create stores the enquiry. When productID is given and resolves, the
// product is attached; an unknown id leaves the enquiry without a product.
// The owner notification is best-effort and never fails the call.
func (s *EnquiryService) Create(ctx context.Context, enquiry *model.Enquiry, productID *int64) (*model.Enquiry, error) {
	if productID != nil {
		product, err := s.products.FindByID(ctx, *productID)
		if err != nil {
			return nil, err
		}
		enquiry.Product = product
		if product == nil {
			s.logger.Debug().Int64("product_id", *productID).Msg("enquiry references unknown product, storing without it")
		}
	}

	if err := s.enquiries.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyEnquiry(ctx, notificationPayload(enquiry)); err != nil {
			s.logger.Error().Err(err).Int64("enquiry_id", enquiry.ID).Msg("failed to schedule enquiry notification")
		}
	}

	return enquiry, nil
}

// ListAll returns every enquiry, most recent first.
func (s *EnquiryService) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	enquiries, err := s.enquiries.FindAllOrderByCreatedAtDesc(ctx)
	if err != nil {
		return nil, err
	}
	if enquiries == nil {
		enquiries = []model.Enquiry{}
	}
	return enquiries, nil
}

func notificationPayload(e *model.Enquiry) job.EnquiryNotificationPayload {
	p := job.EnquiryNotificationPayload{
		EnquiryID:  e.ID,
		Name:       e.FullName(),
		Email:      e.Email,
		Message:    e.Message,
		ReceivedAt: e.CreatedAt,
	}
	if e.Country != nil {
		p.Country = *e.Country
	}
	if e.Product != nil {
		p.ProductTitle = e.Product.Title
	}
	return p
}
