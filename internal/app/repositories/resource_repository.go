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

// ResourceRepository handles database operations for resource
// categories and their links
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

// CreateCategory creates a new resource category
func (r *ResourceRepository) CreateCategory(ctx context.Context, category *models.ResourceCategory) error {
	query := `
		INSERT INTO resource_categories (name, slug, description, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		category.Name, category.Slug, category.Description, category.DisplayOrder,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating resource category: %w", err)
	}

	return nil
}

// GetCategoryByID retrieves a resource category with its links
func (r *ResourceRepository) GetCategoryByID(ctx context.Context, id int64) (*models.ResourceCategory, error) {
	query := `
		SELECT id, name, slug, description, display_order, created_at, updated_at
		FROM resource_categories
		WHERE id = $1
	`

	var category models.ResourceCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.DisplayOrder, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving resource category: %w", err)
	}

	links, err := r.getLinksForCategories(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	category.Links = links[id]

	return &category, nil
}

// GetCategoryBySlug retrieves a resource category with its links by
// slug
func (r *ResourceRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.ResourceCategory, error) {
	query := `
		SELECT id, name, slug, description, display_order, created_at, updated_at
		FROM resource_categories
		WHERE slug = $1
	`

	var category models.ResourceCategory
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.DisplayOrder, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving resource category: %w", err)
	}

	links, err := r.getLinksForCategories(ctx, []int64{category.ID})
	if err != nil {
		return nil, err
	}
	category.Links = links[category.ID]

	return &category, nil
}

// GetAllCategories retrieves all resource categories with their active
// links, both in display order
func (r *ResourceRepository) GetAllCategories(ctx context.Context) ([]*models.ResourceCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, description, display_order, created_at, updated_at
		FROM resource_categories
		ORDER BY display_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.ResourceCategory
	var ids []int64
	for rows.Next() {
		var category models.ResourceCategory
		if err := rows.Scan(
			&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.DisplayOrder, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
		ids = append(ids, category.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		links, err := r.getLinksForCategories(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, category := range categories {
			category.Links = links[category.ID]
		}
	}

	return categories, nil
}

func (r *ResourceRepository) getLinksForCategories(ctx context.Context, categoryIDs []int64) (map[int64][]*models.ResourceLink, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, title, url, description, is_active, display_order, created_at
		FROM resource_links
		WHERE category_id = ANY($1) AND is_active
		ORDER BY display_order, title`, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving resource links: %w", err)
	}
	defer rows.Close()

	links := make(map[int64][]*models.ResourceLink)
	for rows.Next() {
		var l models.ResourceLink
		if err := rows.Scan(
			&l.ID, &l.CategoryID, &l.Title, &l.URL, &l.Description,
			&l.IsActive, &l.DisplayOrder, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		links[l.CategoryID] = append(links[l.CategoryID], &l)
	}

	return links, rows.Err()
}

// CategorySlugExists checks if a slug is already used by a category
func (r *ResourceRepository) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM resource_categories WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking category slug: %w", err)
	}

	return exists, nil
}

// UpdateCategory updates an existing resource category
func (r *ResourceRepository) UpdateCategory(ctx context.Context, category *models.ResourceCategory) error {
	query := `
		UPDATE resource_categories
		SET name = $1, slug = $2, description = $3, display_order = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		category.Name, category.Slug, category.Description,
		category.DisplayOrder, category.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating resource category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory deletes a resource category. Its links are removed by
// the cascade.
func (r *ResourceRepository) DeleteCategory(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resource_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// LinkTitleExists checks if a link title is already used within a
// category, optionally excluding one link ID (for updates)
func (r *ResourceRepository) LinkTitleExists(ctx context.Context, categoryID int64, title string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM resource_links
			WHERE category_id = $1 AND title = $2 AND id != $3)`,
		categoryID, title, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking link title: %w", err)
	}

	return exists, nil
}

// CreateLink creates a new resource link
func (r *ResourceRepository) CreateLink(ctx context.Context, link *models.ResourceLink) error {
	query := `
		INSERT INTO resource_links (category_id, title, url, description, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		link.CategoryID, link.Title, link.URL, link.Description,
		link.IsActive, link.DisplayOrder,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating resource link: %w", err)
	}

	return nil
}

// GetLinkByID retrieves a resource link by ID
func (r *ResourceRepository) GetLinkByID(ctx context.Context, id int64) (*models.ResourceLink, error) {
	var l models.ResourceLink
	err := r.db.QueryRow(ctx, `
		SELECT id, category_id, title, url, description, is_active, display_order, created_at
		FROM resource_links
		WHERE id = $1`, id).Scan(
		&l.ID, &l.CategoryID, &l.Title, &l.URL, &l.Description,
		&l.IsActive, &l.DisplayOrder, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("resource link not found")
		}
		return nil, fmt.Errorf("error retrieving resource link: %w", err)
	}

	return &l, nil
}

// UpdateLink updates an existing resource link
func (r *ResourceRepository) UpdateLink(ctx context.Context, link *models.ResourceLink) error {
	query := `
		UPDATE resource_links
		SET category_id = $1, title = $2, url = $3, description = $4,
		    is_active = $5, display_order = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		link.CategoryID, link.Title, link.URL, link.Description,
		link.IsActive, link.DisplayOrder, link.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating resource link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("resource link not found")
	}

	return nil
}

// DeleteLink deletes a resource link by ID
func (r *ResourceRepository) DeleteLink(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resource_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("resource link not found")
	}

	return nil
}
