package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

// GalleryRepository handles database operations for albums and their
// images
type GalleryRepository struct {
	db *pgxpool.Pool
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
	}
}

func scanAlbum(row pgx.Row) (*models.Album, error) {
	var a models.Album
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.CoverImage,
		&a.IsPublished,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAlbum creates a new album
func (r *GalleryRepository) CreateAlbum(ctx context.Context, album *models.Album) error {
	query := `
		INSERT INTO albums (title, description, cover_image, is_published)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		album.Title, album.Description, album.CoverImage, album.IsPublished,
	).Scan(&album.ID, &album.CreatedAt, &album.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating album: %w", err)
	}

	return nil
}

// GetAlbumByID retrieves an album with its images in display order
func (r *GalleryRepository) GetAlbumByID(ctx context.Context, id int64) (*models.Album, error) {
	album, err := scanAlbum(r.db.QueryRow(ctx, `
		SELECT id, title, description, cover_image, is_published, created_at, updated_at
		FROM albums
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("error retrieving album: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, album_id, title, image, caption, display_order, uploaded_at
		FROM gallery_images
		WHERE album_id = $1
		ORDER BY display_order, id`, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving album images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.GalleryImage
		if err := rows.Scan(
			&img.ID, &img.AlbumID, &img.Title, &img.Image, &img.Caption,
			&img.DisplayOrder, &img.UploadedAt,
		); err != nil {
			return nil, err
		}
		album.Images = append(album.Images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return album, nil
}

// GetAlbums retrieves albums, newest first. When publishedOnly is set,
// unpublished albums are skipped.
func (r *GalleryRepository) GetAlbums(ctx context.Context, publishedOnly bool) ([]*models.Album, error) {
	query := `
		SELECT id, title, description, cover_image, is_published, created_at, updated_at
		FROM albums`
	if publishedOnly {
		query += ` WHERE is_published`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []*models.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}

	return albums, rows.Err()
}

// UpdateAlbum updates an existing album
func (r *GalleryRepository) UpdateAlbum(ctx context.Context, album *models.Album) error {
	query := `
		UPDATE albums
		SET title = $1, description = $2, cover_image = $3, is_published = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		album.Title, album.Description, album.CoverImage, album.IsPublished, album.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating album: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlbumNotFound
	}

	return nil
}

// DeleteAlbum deletes an album. Its images are removed by the cascade.
func (r *GalleryRepository) DeleteAlbum(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting album: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlbumNotFound
	}

	return nil
}

// AddImage adds an image to an album
func (r *GalleryRepository) AddImage(ctx context.Context, image *models.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (album_id, title, image, caption, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query,
		image.AlbumID, image.Title, image.Image, image.Caption, image.DisplayOrder,
	).Scan(&image.ID, &image.UploadedAt)
	if err != nil {
		return fmt.Errorf("error adding gallery image: %w", err)
	}

	return nil
}

// GetImageByID retrieves a gallery image by ID
func (r *GalleryRepository) GetImageByID(ctx context.Context, id int64) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := r.db.QueryRow(ctx, `
		SELECT id, album_id, title, image, caption, display_order, uploaded_at
		FROM gallery_images
		WHERE id = $1`, id).Scan(
		&img.ID, &img.AlbumID, &img.Title, &img.Image, &img.Caption,
		&img.DisplayOrder, &img.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("gallery image not found")
		}
		return nil, fmt.Errorf("error retrieving gallery image: %w", err)
	}

	return &img, nil
}

// DeleteImage deletes a gallery image by ID
func (r *GalleryRepository) DeleteImage(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting gallery image: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("gallery image not found")
	}

	return nil
}

// GetRecentImages retrieves the most recently uploaded images across
// published albums
func (r *GalleryRepository) GetRecentImages(ctx context.Context, limit int) ([]*models.GalleryImage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT gi.id, gi.album_id, gi.title, gi.image, gi.caption, gi.display_order, gi.uploaded_at
		FROM gallery_images gi
		JOIN albums a ON a.id = gi.album_id
		WHERE a.is_published = true
		ORDER BY gi.uploaded_at DESC, gi.id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent gallery images: %w", err)
	}
	defer rows.Close()

	var images []*models.GalleryImage
	for rows.Next() {
		var img models.GalleryImage
		if err := rows.Scan(
			&img.ID, &img.AlbumID, &img.Title, &img.Image, &img.Caption,
			&img.DisplayOrder, &img.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning gallery image: %w", err)
		}
		images = append(images, &img)
	}

	return images, rows.Err()
}

// Search finds published albums whose title or description matches the
// term
func (r *GalleryRepository) Search(ctx context.Context, term string) ([]*models.Album, error) {
	pattern := "%" + term + "%"

	query := squirrel.Select(
		"id", "title", "description", "cover_image", "is_published",
		"created_at", "updated_at").
		From("albums").
		Where(squirrel.And{
			squirrel.Eq{"is_published": true},
			squirrel.Or{
				squirrel.ILike{"title": pattern},
				squirrel.ILike{"description": pattern},
			},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building album search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []*models.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}

	return albums, rows.Err()
}
