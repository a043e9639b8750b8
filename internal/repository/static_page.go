package repository

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/jackc/pgx/v5"
)

type StaticPageRepository struct {
	server *server.Server
}

func NewStaticPageRepository(s *server.Server) *StaticPageRepository {
	return &StaticPageRepository{server: s}
}

const staticPageColumns = `id, page_name, title, content, extra, created_at, updated_at`

func (r *StaticPageRepository) FindAll(ctx context.Context) ([]model.StaticPage, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `SELECT `+staticPageColumns+` FROM static_pages ORDER BY page_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query static pages: %w", err)
	}

	pages, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.StaticPage])
	if err != nil {
		return nil, fmt.Errorf("failed to collect static pages: %w", err)
	}
	return pages, nil
}

func (r *StaticPageRepository) FindByPageName(ctx context.Context, pageName string) (*model.StaticPage, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT `+staticPageColumns+` FROM static_pages WHERE page_name = @page_name`,
		pgx.NamedArgs{"page_name": pageName},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query static page %q: %w", pageName, err)
	}

	page, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.StaticPage])
	page, err = noRows(page, err)
	if err != nil {
		return nil, fmt.Errorf("failed to collect static page %q: %w", pageName, err)
	}
	return page, nil
}

func (r *StaticPageRepository) Create(ctx context.Context, page *model.StaticPage) error {
	err := r.server.DB.Pool.QueryRow(ctx, `
		INSERT INTO static_pages (page_name, title, content, extra)
		VALUES (@page_name, @title, @content, @extra)
		RETURNING id, created_at, updated_at`,
		pgx.NamedArgs{
			"page_name": page.PageName,
			"title":     page.Title,
			"content":   page.Content,
			"extra":     page.Extra,
		},
	).Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert static page %q: %w", page.PageName, err)
	}
	return nil
}

// Update overwrites title, content and extra of the page identified by ID.
func (r *StaticPageRepository) Update(ctx context.Context, page *model.StaticPage) error {
	err := r.server.DB.Pool.QueryRow(ctx, `
		UPDATE static_pages
		SET title = @title, content = @content, extra = @extra, updated_at = CURRENT_TIMESTAMP
		WHERE id = @id
		RETURNING updated_at`,
		pgx.NamedArgs{
			"id":      page.ID,
			"title":   page.Title,
			"content": page.Content,
			"extra":   page.Extra,
		},
	).Scan(&page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update static page %q: %w", page.PageName, err)
	}
	return nil
}
