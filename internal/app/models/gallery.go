package models

import "time"

// Album is a published photo album.
type Album struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CoverImage  string    `json:"coverImage" db:"cover_image"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Images []*GalleryImage `json:"images,omitempty"`
}

// GalleryImage is a single photo inside an album, cascade-deleted with
// its album.
type GalleryImage struct {
	ID           int64     `json:"id" db:"id"`
	AlbumID      int64     `json:"albumId" db:"album_id"`
	Title        string    `json:"title" db:"title"`
	Image        string    `json:"image" db:"image"`
	Caption      string    `json:"caption" db:"caption"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`
}
