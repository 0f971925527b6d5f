package models

import "time"

// Event is a club event. Upcoming vs past is derived by comparing the
// stored timestamps with the request time, never stored as a flag. An
// event with no end timestamp never counts as past.
type Event struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Summary     string     `json:"summary" db:"summary"`
	Description string     `json:"description" db:"description"`
	EventStart  time.Time  `json:"eventStart" db:"event_start"`
	EventEnd    *time.Time `json:"eventEnd,omitempty" db:"event_end"`
	Location    string     `json:"location" db:"location"`
	EventURL    string     `json:"eventUrl" db:"event_url"`
	Organizer   string     `json:"organizer" db:"organizer"`
	Image       string     `json:"image" db:"image"`
	IsPublished bool       `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
