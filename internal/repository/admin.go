package repository

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/model"
	"github.com/eximroyals/backend/internal/server"
	"github.com/jackc/pgx/v5"
)

type AdminRepository struct {
	server *server.Server
}

func NewAdminRepository(s *server.Server) *AdminRepository {
	return &AdminRepository{server: s}
}

const adminColumns = `id, email, password, created_at, updated_at`

func (r *AdminRepository) FindByID(ctx context.Context, id int64) (*model.Admin, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to query admin by id %d: %w", id, err)
	}

	admin, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Admin])
	admin, err = noRows(admin, err)
	if err != nil {
		return nil, fmt.Errorf("failed to collect admin by id %d: %w", id, err)
	}
	return admin, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = @email`, pgx.NamedArgs{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query admin by email: %w", err)
	}

	admin, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Admin])
	admin, err = noRows(admin, err)
	if err != nil {
		return nil, fmt.Errorf("failed to collect admin by email: %w", err)
	}
	return admin, nil
}

func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.server.DB.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE email = @email)`,
		pgx.NamedArgs{"email": email},
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return exists, nil
}

// Create inserts the admin and fills in the generated columns.
func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	err := r.server.DB.Pool.QueryRow(ctx, `
		INSERT INTO admins (email, password)
		VALUES (@email, @password)
		RETURNING id, created_at, updated_at`,
		pgx.NamedArgs{"email": admin.Email, "password": admin.Password},
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}
