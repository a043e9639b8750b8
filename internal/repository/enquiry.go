package repository

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type EnquiryRepository struct {
	server *server.Server
}

func NewEnquiryRepository(s *server.Server) *EnquiryRepository {
	return &EnquiryRepository{server: s}
}

// Create inserts the enquiry and fills in its id and creation time.
// The product association is stored by id only.
func (r *EnquiryRepository) Create(ctx context.Context, enquiry *model.Enquiry) error {
	var productID *int64
	if enquiry.Product != nil {
		productID = &enquiry.Product.ID
	}

	err := r.server.DB.Pool.QueryRow(ctx, `
		INSERT INTO enquiries (first_name, last_name, country, email, message, product_id)
		VALUES (@first_name, @last_name, @country, @email, @message, @product_id)
		RETURNING id, created_at`,
		pgx.NamedArgs{
			"first_name": enquiry.FirstName,
			"last_name":  enquiry.LastName,
			"country":    enquiry.Country,
			"email":      enquiry.Email,
			"message":    enquiry.Message,
			"product_id": productID,
		},
	).Scan(&enquiry.ID, &enquiry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert enquiry: %w", err)
	}
	return nil
}

// FindAllOrderByCreatedAtDesc lists enquiries newest first, each with its
// product (if any) resolved. Ties on created_at fall back to id.
func (r *EnquiryRepository) FindAllOrderByCreatedAtDesc(ctx context.Context) ([]model.Enquiry, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT e.id, e.first_name, e.last_name, e.country, e.email, e.message, e.created_at,
		       p.id, p.title, p.description, p.image_url, p.pdf_url, p.category_id, p.created_at, p.updated_at
		FROM enquiries e
		LEFT JOIN products p ON p.id = e.product_id
		ORDER BY e.created_at DESC, e.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query enquiries: %w", err)
	}

	enquiries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Enquiry, error) {
		var e model.Enquiry
		var p struct {
			id          *int64
			title       *string
			description *string
			imageURL    *string
			pdfURL      *string
			categoryID  *int64
			createdAt   pgtype.Timestamptz
			updatedAt   pgtype.Timestamptz
		}

		err := row.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.Country, &e.Email, &e.Message, &e.CreatedAt,
			&p.id, &p.title, &p.description, &p.imageURL, &p.pdfURL, &p.categoryID, &p.createdAt, &p.updatedAt,
		)
		if err != nil {
			return model.Enquiry{}, err
		}

		if p.id != nil {
			e.Product = &model.Product{
				Base: model.Base{
					ID:        *p.id,
					CreatedAt: p.createdAt.Time,
					UpdatedAt: p.updatedAt.Time,
				},
				Title:       deref(p.title),
				Description: deref(p.description),
				ImageURL:    p.imageURL,
				PdfURL:      p.pdfURL,
				CategoryID:  p.categoryID,
			}
		}
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect enquiries: %w", err)
	}
	return enquiries, nil
}
