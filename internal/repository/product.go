package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductRepository struct {
	server *server.Server
}

func NewProductRepository(s *server.Server) *ProductRepository {
	return &ProductRepository{server: s}
}

const productSelect = `
	SELECT p.id, p.title, p.description, p.image_url, p.pdf_url, p.category_id, p.created_at, p.updated_at,
	       c.id, c.title, c.description, c.image_url, c.created_at, c.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// categoryColumnsScan receives the nullable side of the category join.
type categoryColumnsScan struct {
	id          *int64
	title       *string
	description *string
	imageURL    *string
	createdAt   pgtype.Timestamptz
	updatedAt   pgtype.Timestamptz
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var c categoryColumnsScan

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.PdfURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&c.id, &c.title, &c.description, &c.imageURL, &c.createdAt, &c.updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if c.id != nil {
		p.Category = &model.Category{
			Base: model.Base{
				ID:        *c.id,
				CreatedAt: c.createdAt.Time,
				UpdatedAt: c.updatedAt.Time,
			},
			Title:       deref(c.title),
			Description: deref(c.description),
			ImageURL:    c.imageURL,
		}
	}

	return &p, nil
}

// FindAll lists products newest first. A non-nil categoryID restricts the
// result to that category.
func (r *ProductRepository) FindAll(ctx context.Context, categoryID *int64) ([]model.Product, error) {
	query := productSelect
	args := pgx.NamedArgs{}
	if categoryID != nil {
		query += ` WHERE p.category_id = @category_id`
		args["category_id"] = *categoryID
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.server.DB.Pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Product, error) {
		p, err := scanProduct(row)
		if err != nil {
			return model.Product{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	row := r.server.DB.Pool.QueryRow(ctx, productSelect+` WHERE p.id = @id`, pgx.NamedArgs{"id": id})

	product, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product %d: %w", id, err)
	}
	return product, nil
}
