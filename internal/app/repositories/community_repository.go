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

const communityColumns = `id, title, slug, description, logo, website_url,
	is_active, is_featured, display_order, created_at, updated_at`

// CommunityRepository handles database operations for community
// outreach programmes
type CommunityRepository struct {
	db *pgxpool.Pool
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{
		db: db,
	}
}

func scanCommunity(row pgx.Row) (*models.CommunityOutreach, error) {
	var c models.CommunityOutreach
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Slug,
		&c.Description,
		&c.Logo,
		&c.WebsiteURL,
		&c.IsActive,
		&c.IsFeatured,
		&c.DisplayOrder,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommunityRepository) queryCommunities(ctx context.Context, sql string, args ...interface{}) ([]*models.CommunityOutreach, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var communities []*models.CommunityOutreach
	for rows.Next() {
		c, err := scanCommunity(rows)
		if err != nil {
			return nil, err
		}
		communities = append(communities, c)
	}

	return communities, rows.Err()
}

// Create creates a new community outreach entry
func (r *CommunityRepository) Create(ctx context.Context, community *models.CommunityOutreach) error {
	query := `
		INSERT INTO communities (title, slug, description, logo, website_url,
			is_active, is_featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		community.Title, community.Slug, community.Description, community.Logo,
		community.WebsiteURL, community.IsActive, community.IsFeatured,
		community.DisplayOrder,
	).Scan(&community.ID, &community.CreatedAt, &community.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating community: %w", err)
	}

	return nil
}

// GetByID retrieves a community by ID
func (r *CommunityRepository) GetByID(ctx context.Context, id int64) (*models.CommunityOutreach, error) {
	community, err := scanCommunity(r.db.QueryRow(ctx,
		`SELECT `+communityColumns+` FROM communities WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("error retrieving community: %w", err)
	}

	return community, nil
}

// GetBySlug retrieves a community by slug
func (r *CommunityRepository) GetBySlug(ctx context.Context, slug string) (*models.CommunityOutreach, error) {
	community, err := scanCommunity(r.db.QueryRow(ctx,
		`SELECT `+communityColumns+` FROM communities WHERE slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("error retrieving community: %w", err)
	}

	return community, nil
}

// GetActive retrieves active communities in display order
func (r *CommunityRepository) GetActive(ctx context.Context) ([]*models.CommunityOutreach, error) {
	return r.queryCommunities(ctx,
		`SELECT `+communityColumns+` FROM communities
		 WHERE is_active
		 ORDER BY display_order, title`)
}

// GetFeatured retrieves active featured communities for the home page
func (r *CommunityRepository) GetFeatured(ctx context.Context) ([]*models.CommunityOutreach, error) {
	return r.queryCommunities(ctx,
		`SELECT `+communityColumns+` FROM communities
		 WHERE is_active AND is_featured
		 ORDER BY display_order, title`)
}

// GetAll retrieves every community for the admin surface
func (r *CommunityRepository) GetAll(ctx context.Context) ([]*models.CommunityOutreach, error) {
	return r.queryCommunities(ctx,
		`SELECT `+communityColumns+` FROM communities
		 ORDER BY display_order, title`)
}

// SlugExists checks if a slug is already used by a community
func (r *CommunityRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM communities WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking community slug: %w", err)
	}

	return exists, nil
}

// Update updates an existing community
func (r *CommunityRepository) Update(ctx context.Context, community *models.CommunityOutreach) error {
	query := `
		UPDATE communities
		SET title = $1, slug = $2, description = $3, logo = $4,
		    website_url = $5, is_active = $6, is_featured = $7,
		    display_order = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		community.Title, community.Slug, community.Description, community.Logo,
		community.WebsiteURL, community.IsActive, community.IsFeatured,
		community.DisplayOrder, community.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating community: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}

	return nil
}

// Delete deletes a community by ID
func (r *CommunityRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM communities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting community: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}

	return nil
}
