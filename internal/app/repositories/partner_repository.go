package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

const partnerColumns = `id, name, logo, website_link, description, partner_type,
	is_active, display_order, created_at, updated_at`

// PartnerRepository handles database operations for partners
type PartnerRepository struct {
	db *pgxpool.Pool
}

// NewPartnerRepository creates a new partner repository
func NewPartnerRepository(db *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{
		db: db,
	}
}

func scanPartner(row pgx.Row) (*models.Partner, error) {
	var p models.Partner
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Logo,
		&p.WebsiteLink,
		&p.Description,
		&p.PartnerType,
		&p.IsActive,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepository) queryPartners(ctx context.Context, sql string, args ...interface{}) ([]*models.Partner, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []*models.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, rows.Err()
}

// Create creates a new partner
func (r *PartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	query := `
		INSERT INTO partners (name, logo, website_link, description,
			partner_type, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		partner.Name, partner.Logo, partner.WebsiteLink, partner.Description,
		partner.PartnerType, partner.IsActive, partner.DisplayOrder,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating partner: %w", err)
	}

	return nil
}

// GetByID retrieves a partner by ID
func (r *PartnerRepository) GetByID(ctx context.Context, id int64) (*models.Partner, error) {
	partner, err := scanPartner(r.db.QueryRow(ctx,
		`SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("error retrieving partner: %w", err)
	}

	return partner, nil
}

// Partners list in display order with name ties broken alphabetically;
// the public page groups them by type client-side.
const partnerOrder = `display_order, name`

// GetActive retrieves active partners in display order
func (r *PartnerRepository) GetActive(ctx context.Context) ([]*models.Partner, error) {
	return r.queryPartners(ctx,
		`SELECT `+partnerColumns+` FROM partners
		 WHERE is_active
		 ORDER BY `+partnerOrder)
}

// GetAll retrieves every partner for the admin surface
func (r *PartnerRepository) GetAll(ctx context.Context) ([]*models.Partner, error) {
	return r.queryPartners(ctx,
		`SELECT `+partnerColumns+` FROM partners
		 ORDER BY `+partnerOrder)
}

// Update updates an existing partner
func (r *PartnerRepository) Update(ctx context.Context, partner *models.Partner) error {
	query := `
		UPDATE partners
		SET name = $1, logo = $2, website_link = $3, description = $4,
		    partner_type = $5, is_active = $6, display_order = $7,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		partner.Name, partner.Logo, partner.WebsiteLink, partner.Description,
		partner.PartnerType, partner.IsActive, partner.DisplayOrder, partner.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating partner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPartnerNotFound
	}

	return nil
}

// Delete deletes a partner by ID
func (r *PartnerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting partner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPartnerNotFound
	}

	return nil
}
