package models

import "time"

// ResourceCategory groups resource links for the resources page and the
// navbar dropdown.
type ResourceCategory struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description" db:"description"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Links []*ResourceLink `json:"links,omitempty"`
}

// ResourceLink is an external learning resource. Titles are unique
// within a category.
type ResourceLink struct {
	ID           int64     `json:"id" db:"id"`
	CategoryID   int64     `json:"categoryId" db:"category_id"`
	Title        string    `json:"title" db:"title"`
	URL          string    `json:"url" db:"url"`
	Description  string    `json:"description" db:"description"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
