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

const newsColumns = `id, title, slug, author, content, image, publish_date,
	is_published, created_at, updated_at`

// NewsRepository handles database operations for news posts
type NewsRepository struct {
	db *pgxpool.Pool
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
	}
}

func scanNews(row pgx.Row) (*models.News, error) {
	var n models.News
	err := row.Scan(
		&n.ID,
		&n.Title,
		&n.Slug,
		&n.Author,
		&n.Content,
		&n.Image,
		&n.PublishDate,
		&n.IsPublished,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create creates a new news post
func (r *NewsRepository) Create(ctx context.Context, news *models.News) error {
	query := `
		INSERT INTO news (title, slug, author, content, image, publish_date, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		news.Title, news.Slug, news.Author, news.Content, news.Image,
		news.PublishDate, news.IsPublished,
	).Scan(&news.ID, &news.CreatedAt, &news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating news post: %w", err)
	}

	return nil
}

// GetByID retrieves a news post by ID
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	news, err := scanNews(r.db.QueryRow(ctx,
		`SELECT `+newsColumns+` FROM news WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("error retrieving news post: %w", err)
	}

	return news, nil
}

// GetBySlug retrieves a published news post by slug
func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	news, err := scanNews(r.db.QueryRow(ctx,
		`SELECT `+newsColumns+` FROM news WHERE slug = $1 AND is_published`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("error retrieving news post: %w", err)
	}

	return news, nil
}

// GetPublished retrieves published news posts, newest publish date first
func (r *NewsRepository) GetPublished(ctx context.Context, limit int) ([]*models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news
		WHERE is_published
		ORDER BY publish_date DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, n)
	}

	return posts, rows.Err()
}

// GetAll retrieves every news post for the admin surface
func (r *NewsRepository) GetAll(ctx context.Context) ([]*models.News, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+newsColumns+` FROM news ORDER BY publish_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, n)
	}

	return posts, rows.Err()
}

// SlugExists checks if a slug is already used by a news post
func (r *NewsRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking news slug: %w", err)
	}

	return exists, nil
}

// Update updates an existing news post
func (r *NewsRepository) Update(ctx context.Context, news *models.News) error {
	query := `
		UPDATE news
		SET title = $1, slug = $2, author = $3, content = $4, image = $5,
		    publish_date = $6, is_published = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		news.Title, news.Slug, news.Author, news.Content, news.Image,
		news.PublishDate, news.IsPublished, news.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating news post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}

	return nil
}

// Delete deletes a news post by ID
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting news post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}

	return nil
}
