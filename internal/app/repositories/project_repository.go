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

const projectColumns = `id, title, slug, summary, description, status, url,
	github_link, image, publish_date, is_published, is_featured, created_at, updated_at`

// Project listings run newest publish date first with the ascending id
// as the tie-break, which keeps feed pages stable between requests.
const projectOrder = `publish_date DESC, id`

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Summary,
		&p.Description,
		&p.Status,
		&p.URL,
		&p.GithubLink,
		&p.Image,
		&p.PublishDate,
		&p.IsPublished,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, sql string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, slug, summary, description, status, url,
			github_link, image, publish_date, is_published, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		project.Title, project.Slug, project.Summary, project.Description,
		project.Status, project.URL, project.GithubLink, project.Image,
		project.PublishDate, project.IsPublished, project.IsFeatured,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project, err := scanProject(r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return project, nil
}

// GetBySlug retrieves a published project by slug
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	project, err := scanProject(r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE slug = $1 AND is_published`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return project, nil
}

// GetPublished retrieves published projects, newest publish date first
func (r *ProjectRepository) GetPublished(ctx context.Context) ([]*models.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE is_published
		 ORDER BY `+projectOrder)
}

// GetFeatured retrieves published featured projects for the home page
func (r *ProjectRepository) GetFeatured(ctx context.Context, limit int) ([]*models.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE is_published AND is_featured
		 ORDER BY `+projectOrder+`
		 LIMIT $1`, limit)
}

// GetPage retrieves a page of published projects with the total count
func (r *ProjectRepository) GetPage(ctx context.Context, limit, offset int) ([]*models.Project, int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+`, COUNT(*) OVER() AS total_count FROM projects
		 WHERE is_published
		 ORDER BY `+projectOrder+`
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []*models.Project
	var totalCount int64
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Description, &p.Status,
			&p.URL, &p.GithubLink, &p.Image, &p.PublishDate, &p.IsPublished,
			&p.IsFeatured, &p.CreatedAt, &p.UpdatedAt, &totalCount,
		); err != nil {
			return nil, 0, err
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if projects == nil {
		err := r.db.QueryRow(ctx,
			`SELECT COUNT(*) FROM projects WHERE is_published`).Scan(&totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("error counting projects: %w", err)
		}
	}

	return projects, totalCount, nil
}

// GetAll retrieves every project for the admin surface
func (r *ProjectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY `+projectOrder)
}

// SlugExists checks if a slug is already used by a project
func (r *ProjectRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking project slug: %w", err)
	}

	return exists, nil
}

// Update updates an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, slug = $2, summary = $3, description = $4, status = $5,
		    url = $6, github_link = $7, image = $8, publish_date = $9,
		    is_published = $10, is_featured = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
	`

	cmdTag, err := r.db.Exec(ctx, query,
		project.Title, project.Slug, project.Summary, project.Description,
		project.Status, project.URL, project.GithubLink, project.Image,
		project.PublishDate, project.IsPublished, project.IsFeatured, project.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Delete deletes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}
