package repository

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/jackc/pgx/v5"
)

type CategoryRepository struct {
	server *server.Server
}

func NewCategoryRepository(s *server.Server) *CategoryRepository {
	return &CategoryRepository{server: s}
}

const categoryColumns = `id, title, description, image_url, created_at, updated_at`

func (r *CategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to collect categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to query category %d: %w", id, err)
	}

	category, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Category])
	category, err = noRows(category, err)
	if err != nil {
		return nil, fmt.Errorf("failed to collect category %d: %w", id, err)
	}
	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	err := r.server.DB.Pool.QueryRow(ctx, `
		INSERT INTO categories (title, description, image_url)
		VALUES (@title, @description, @image_url)
		RETURNING id, created_at, updated_at`,
		pgx.NamedArgs{
			"title":       category.Title,
			"description": category.Description,
			"image_url":   category.ImageURL,
		},
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	err := r.server.DB.Pool.QueryRow(ctx, `
		UPDATE categories
		SET title = @title, description = @description, image_url = @image_url, updated_at = CURRENT_TIMESTAMP
		WHERE id = @id
		RETURNING updated_at`,
		pgx.NamedArgs{
			"id":          category.ID,
			"title":       category.Title,
			"description": category.Description,
			"image_url":   category.ImageURL,
		},
	).Scan(&category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}
	return nil
}

// DeleteByID removes the category. Deleting a missing id is not an error.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.server.DB.Pool.Exec(ctx, `DELETE FROM categories WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
