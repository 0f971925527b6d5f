package models

import "time"

// Partner is a sponsoring or collaborating organisation.
type Partner struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Logo         string      `json:"logo" db:"logo"`
	WebsiteLink  string      `json:"websiteLink" db:"website_link"`
	Description  string      `json:"description" db:"description"`
	PartnerType  PartnerType `json:"partnerType" db:"partner_type"`
	IsActive     bool        `json:"isActive" db:"is_active"`
	DisplayOrder int         `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}
