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

// ShowcaseRepository handles database operations for the home page
// hero slides and pillars
type ShowcaseRepository struct {
	db *pgxpool.Pool
}

// NewShowcaseRepository creates a new showcase repository
func NewShowcaseRepository(db *pgxpool.Pool) *ShowcaseRepository {
	return &ShowcaseRepository{
		db: db,
	}
}

// CreateHeroSlide creates a new hero slide
func (r *ShowcaseRepository) CreateHeroSlide(ctx context.Context, slide *models.HeroSlide) error {
	query := `
		INSERT INTO hero_slides (title, subtitle, image, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		slide.Title, slide.Subtitle, slide.Image, slide.IsActive, slide.DisplayOrder,
	).Scan(&slide.ID, &slide.CreatedAt, &slide.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating hero slide: %w", err)
	}

	return nil
}

// GetHeroSlideByID retrieves a hero slide by ID
func (r *ShowcaseRepository) GetHeroSlideByID(ctx context.Context, id int64) (*models.HeroSlide, error) {
	var s models.HeroSlide
	err := r.db.QueryRow(ctx, `
		SELECT id, title, subtitle, image, is_active, display_order, created_at, updated_at
		FROM hero_slides
		WHERE id = $1`, id).Scan(
		&s.ID, &s.Title, &s.Subtitle, &s.Image, &s.IsActive,
		&s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHeroSlideNotFound
		}
		return nil, fmt.Errorf("error retrieving hero slide: %w", err)
	}

	return &s, nil
}

// GetHeroSlides retrieves hero slides in display order. When activeOnly
// is set, inactive slides are skipped.
func (r *ShowcaseRepository) GetHeroSlides(ctx context.Context, activeOnly bool) ([]*models.HeroSlide, error) {
	query := `
		SELECT id, title, subtitle, image, is_active, display_order, created_at, updated_at
		FROM hero_slides`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slides []*models.HeroSlide
	for rows.Next() {
		var s models.HeroSlide
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Subtitle, &s.Image, &s.IsActive,
			&s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		slides = append(slides, &s)
	}

	return slides, rows.Err()
}

// UpdateHeroSlide updates an existing hero slide
func (r *ShowcaseRepository) UpdateHeroSlide(ctx context.Context, slide *models.HeroSlide) error {
	query := `
		UPDATE hero_slides
		SET title = $1, subtitle = $2, image = $3, is_active = $4,
		    display_order = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		slide.Title, slide.Subtitle, slide.Image, slide.IsActive,
		slide.DisplayOrder, slide.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating hero slide: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHeroSlideNotFound
	}

	return nil
}

// DeleteHeroSlide deletes a hero slide by ID
func (r *ShowcaseRepository) DeleteHeroSlide(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hero_slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting hero slide: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHeroSlideNotFound
	}

	return nil
}

// CreatePillar creates a new pillar
func (r *ShowcaseRepository) CreatePillar(ctx context.Context, pillar *models.Pillar) error {
	query := `
		INSERT INTO pillars (title, description, icon, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		pillar.Title, pillar.Description, pillar.Icon, pillar.DisplayOrder,
	).Scan(&pillar.ID, &pillar.CreatedAt, &pillar.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating pillar: %w", err)
	}

	return nil
}

// GetPillarByID retrieves a pillar by ID
func (r *ShowcaseRepository) GetPillarByID(ctx context.Context, id int64) (*models.Pillar, error) {
	var p models.Pillar
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, icon, display_order, created_at, updated_at
		FROM pillars
		WHERE id = $1`, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Icon,
		&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("pillar not found")
		}
		return nil, fmt.Errorf("error retrieving pillar: %w", err)
	}

	return &p, nil
}

// GetPillars retrieves all pillars in display order
func (r *ShowcaseRepository) GetPillars(ctx context.Context) ([]*models.Pillar, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, icon, display_order, created_at, updated_at
		FROM pillars
		ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pillars []*models.Pillar
	for rows.Next() {
		var p models.Pillar
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Icon,
			&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		pillars = append(pillars, &p)
	}

	return pillars, rows.Err()
}

// UpdatePillar updates an existing pillar
func (r *ShowcaseRepository) UpdatePillar(ctx context.Context, pillar *models.Pillar) error {
	query := `
		UPDATE pillars
		SET title = $1, description = $2, icon = $3, display_order = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		pillar.Title, pillar.Description, pillar.Icon, pillar.DisplayOrder, pillar.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating pillar: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("pillar not found")
	}

	return nil
}

// DeletePillar deletes a pillar by ID
func (r *ShowcaseRepository) DeletePillar(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM pillars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting pillar: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("pillar not found")
	}

	return nil
}
