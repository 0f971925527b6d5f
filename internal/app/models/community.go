package models

import "time"

// CommunityOutreach links to a sub-community or outreach programme of
// the club, such as the IndabaX chapter.
type CommunityOutreach struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description" db:"description"`
	Logo         string    `json:"logo" db:"logo"`
	WebsiteURL   string    `json:"websiteUrl" db:"website_url"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	IsFeatured   bool      `json:"isFeatured" db:"is_featured"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
