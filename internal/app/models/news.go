package models

import "time"

// News is a published announcement. The slug is derived from the title
// on first save and made unique with numeric suffixes.
type News struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Author      string    `json:"author" db:"author"`
	Content     string    `json:"content" db:"content"`
	Image       string    `json:"image" db:"image"`
	PublishDate time.Time `json:"publishDate" db:"publish_date"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
