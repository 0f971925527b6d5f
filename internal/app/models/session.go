package models

import "time"

// Session is a club meeting or talk. Speakers are leaders linked through
// the session_speakers join table; guest speakers who are not leaders
// are captured as free text.
type Session struct {
	ID               int64     `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Tagline          string    `json:"tagline" db:"tagline"`
	Description      string    `json:"description" db:"description"`
	SessionDate      time.Time `json:"sessionDate" db:"session_date"`
	StartTime        string    `json:"startTime" db:"start_time"`
	EndTime          string    `json:"endTime" db:"end_time"`
	Venue            string    `json:"venue" db:"venue"`
	GooglePhotosLink string    `json:"googlePhotosLink" db:"google_photos_link"`
	GuestSpeakers    string    `json:"guestSpeakers" db:"guest_speakers_info"`
	IsPublished      bool      `json:"isPublished" db:"is_published"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Speakers []*Leader       `json:"speakers,omitempty"`
	Images   []*SessionImage `json:"images,omitempty"`
}

// SessionImage is a photo attached to a session, cascade-deleted with it.
type SessionImage struct {
	ID           int64     `json:"id" db:"id"`
	SessionID    int64     `json:"sessionId" db:"session_id"`
	Image        string    `json:"image" db:"image"`
	Caption      string    `json:"caption" db:"caption"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
