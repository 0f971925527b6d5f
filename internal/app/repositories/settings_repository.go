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

// SiteSettingsRepository handles database operations for the singleton
// site settings row.
type SiteSettingsRepository struct {
	db *pgxpool.Pool
}

// NewSiteSettingsRepository creates a new site settings repository
func NewSiteSettingsRepository(db *pgxpool.Pool) *SiteSettingsRepository {
	return &SiteSettingsRepository{
		db: db,
	}
}

// Get retrieves the site settings row
func (r *SiteSettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	query := `
		SELECT id, site_name, tagline, featured_announcement, contact_email,
		       phone_number, address, facebook_url, twitter_url, linkedin_url,
		       background_image, created_at, updated_at
		FROM site_settings
		ORDER BY id
		LIMIT 1
	`

	var s models.SiteSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.SiteName,
		&s.Tagline,
		&s.FeaturedAnnouncement,
		&s.ContactEmail,
		&s.PhoneNumber,
		&s.Address,
		&s.FacebookURL,
		&s.TwitterURL,
		&s.LinkedinURL,
		&s.BackgroundImage,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("error retrieving site settings: %w", err)
	}

	return &s, nil
}

// Create inserts the site settings row. A second insert is rejected so
// the table stays a singleton.
func (r *SiteSettingsRepository) Create(ctx context.Context, s *models.SiteSettings) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM site_settings)`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking site settings existence: %w", err)
	}
	if exists {
		return apperrors.ErrSingletonExists
	}

	query := `
		INSERT INTO site_settings (site_name, tagline, featured_announcement,
			contact_email, phone_number, address, facebook_url, twitter_url,
			linkedin_url, background_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		s.SiteName, s.Tagline, s.FeaturedAnnouncement, s.ContactEmail,
		s.PhoneNumber, s.Address, s.FacebookURL, s.TwitterURL,
		s.LinkedinURL, s.BackgroundImage,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating site settings: %w", err)
	}

	return nil
}

// Update updates the existing site settings row
func (r *SiteSettingsRepository) Update(ctx context.Context, s *models.SiteSettings) error {
	query := `
		UPDATE site_settings
		SET site_name = $1, tagline = $2, featured_announcement = $3,
		    contact_email = $4, phone_number = $5, address = $6,
		    facebook_url = $7, twitter_url = $8, linkedin_url = $9,
		    background_image = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		s.SiteName, s.Tagline, s.FeaturedAnnouncement, s.ContactEmail,
		s.PhoneNumber, s.Address, s.FacebookURL, s.TwitterURL,
		s.LinkedinURL, s.BackgroundImage, s.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating site settings: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSettingsNotFound
	}

	return nil
}
