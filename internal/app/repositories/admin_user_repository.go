package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

const adminColumns = `id, email, password_hash, full_name, is_active,
	last_login, created_at, updated_at`

// AdminUserRepository handles database operations for admin accounts
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{
		db: db,
	}
}

func scanAdmin(row pgx.Row) (*models.AdminUser, error) {
	var a models.AdminUser
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.Password,
		&a.FullName,
		&a.IsActive,
		&a.LastLogin,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create creates a new admin account
func (r *AdminUserRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (email, password_hash, full_name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		admin.Email, admin.Password, admin.FullName, admin.IsActive,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}

	return nil
}

// GetByEmail retrieves an admin account by email
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	admin, err := scanAdmin(r.db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admin_users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return admin, nil
}

// GetByID retrieves an admin account by ID
func (r *AdminUserRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	admin, err := scanAdmin(r.db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admin_users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return admin, nil
}

// ExistsByEmail checks if an admin account exists for the email
func (r *AdminUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin records a successful login
func (r *AdminUserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE admin_users SET last_login = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *AdminUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE admin_users
		SET password_hash = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating admin password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}
