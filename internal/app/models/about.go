package models

import "time"

// AboutPage is the singleton About Us content with its nested sections.
type AboutPage struct {
	ID                    int64     `json:"id" db:"id"`
	MainHeading           string    `json:"mainHeading" db:"main_heading"`
	MainParagraph         string    `json:"mainParagraph" db:"main_paragraph"`
	Mission               string    `json:"mission" db:"mission"`
	Vision                string    `json:"vision" db:"vision"`
	PurposeHeading        string    `json:"purposeHeading" db:"purpose_heading"`
	PurposeParagraph      string    `json:"purposeParagraph" db:"purpose_paragraph"`
	AffiliationsHeading   string    `json:"affiliationsHeading" db:"affiliations_heading"`
	AffiliationsParagraph string    `json:"affiliationsParagraph" db:"affiliations_paragraph"`
	ContactEmail          string    `json:"contactEmail" db:"contact_email"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time `json:"updatedAt" db:"updated_at"`

	// Child records, cascade-deleted with the page
	Objectives       []*Objective       `json:"objectives,omitempty"`
	AffiliationLinks []*AffiliationLink `json:"affiliationLinks,omitempty"`
}

// Objective is a single bullet under the About page purpose section.
type Objective struct {
	ID           int64  `json:"id" db:"id"`
	AboutPageID  int64  `json:"aboutPageId" db:"about_page_id"`
	Text         string `json:"text" db:"text"`
	DisplayOrder int    `json:"displayOrder" db:"display_order"`
}

// AffiliationLink points at an organisation the club is affiliated with.
type AffiliationLink struct {
	ID           int64  `json:"id" db:"id"`
	AboutPageID  int64  `json:"aboutPageId" db:"about_page_id"`
	Name         string `json:"name" db:"name"`
	URL          string `json:"url" db:"url"`
	DisplayOrder int    `json:"displayOrder" db:"display_order"`
}
