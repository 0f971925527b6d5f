package models

import "time"

// SiteSettings holds sitewide branding and contact information.
// The table is a singleton: the repository rejects a second row.
type SiteSettings struct {
	ID                   int64     `json:"id" db:"id"`
	SiteName             string    `json:"siteName" db:"site_name"`
	Tagline              string    `json:"tagline" db:"tagline"`
	FeaturedAnnouncement string    `json:"featuredAnnouncement" db:"featured_announcement"`
	ContactEmail         string    `json:"contactEmail" db:"contact_email"`
	PhoneNumber          string    `json:"phoneNumber" db:"phone_number"`
	Address              string    `json:"address" db:"address"`
	FacebookURL          string    `json:"facebookUrl" db:"facebook_url"`
	TwitterURL           string    `json:"twitterUrl" db:"twitter_url"`
	LinkedinURL          string    `json:"linkedinUrl" db:"linkedin_url"`
	BackgroundImage      string    `json:"backgroundImage" db:"background_image"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`
}
