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

// ResearchRepository handles database operations for research areas
type ResearchRepository struct {
	db *pgxpool.Pool
}

// NewResearchRepository creates a new research area repository
func NewResearchRepository(db *pgxpool.Pool) *ResearchRepository {
	return &ResearchRepository{
		db: db,
	}
}

// Create creates a new research area
func (r *ResearchRepository) Create(ctx context.Context, area *models.ResearchArea) error {
	query := `
		INSERT INTO research_areas (name, slug, description, image, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		area.Name, area.Slug, area.Description, area.Image, area.DisplayOrder,
	).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating research area: %w", err)
	}

	return nil
}

// GetByID retrieves a research area by ID
func (r *ResearchRepository) GetByID(ctx context.Context, id int64) (*models.ResearchArea, error) {
	query := `
		SELECT id, name, slug, description, image, display_order, created_at, updated_at
		FROM research_areas
		WHERE id = $1
	`

	var area models.ResearchArea
	err := r.db.QueryRow(ctx, query, id).Scan(
		&area.ID, &area.Name, &area.Slug, &area.Description, &area.Image,
		&area.DisplayOrder, &area.CreatedAt, &area.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResearchAreaNotFound
		}
		return nil, fmt.Errorf("error retrieving research area: %w", err)
	}

	return &area, nil
}

// GetAll retrieves all research areas in display order
func (r *ResearchRepository) GetAll(ctx context.Context) ([]*models.ResearchArea, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, description, image, display_order, created_at, updated_at
		FROM research_areas
		ORDER BY display_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []*models.ResearchArea
	for rows.Next() {
		var area models.ResearchArea
		if err := rows.Scan(
			&area.ID, &area.Name, &area.Slug, &area.Description, &area.Image,
			&area.DisplayOrder, &area.CreatedAt, &area.UpdatedAt,
		); err != nil {
			return nil, err
		}
		areas = append(areas, &area)
	}

	return areas, rows.Err()
}

// SlugExists checks if a slug is already used by a research area
func (r *ResearchRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM research_areas WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking research area slug: %w", err)
	}

	return exists, nil
}

// Update updates an existing research area
func (r *ResearchRepository) Update(ctx context.Context, area *models.ResearchArea) error {
	query := `
		UPDATE research_areas
		SET name = $1, slug = $2, description = $3, image = $4,
		    display_order = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		area.Name, area.Slug, area.Description, area.Image,
		area.DisplayOrder, area.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating research area: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResearchAreaNotFound
	}

	return nil
}

// Delete deletes a research area by ID
func (r *ResearchRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM research_areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting research area: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResearchAreaNotFound
	}

	return nil
}
