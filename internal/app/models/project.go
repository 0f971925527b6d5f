package models

import "time"

// Project is a club project shown on the projects page and the home
// page carousel.
type Project struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Slug        string        `json:"slug" db:"slug"`
	Summary     string        `json:"summary" db:"summary"`
	Description string        `json:"description" db:"description"`
	Status      ProjectStatus `json:"status" db:"status"`
	URL         string        `json:"url" db:"url"`
	GithubLink  string        `json:"githubLink" db:"github_link"`
	Image       string        `json:"image" db:"image"`
	PublishDate time.Time     `json:"publishDate" db:"publish_date"`
	IsPublished bool          `json:"isPublished" db:"is_published"`
	IsFeatured  bool          `json:"isFeatured" db:"is_featured"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}
