package models

import "time"

// Leader is a club leader, executive board member or faculty mentor.
// Current status is never stored; it is derived from the term dates at
// read time (an open-ended term has EndDate == nil).
type Leader struct {
	ID          int64          `json:"id" db:"id"`
	FullName    string         `json:"fullName" db:"full_name"`
	Position    string         `json:"position" db:"position"`
	Category    LeaderCategory `json:"category" db:"category"`
	Bio         string         `json:"bio" db:"bio"`
	Photo       string         `json:"photo" db:"photo"`
	Email       string         `json:"email" db:"email"`
	LinkedinURL string         `json:"linkedinUrl" db:"linkedin_url"`
	StartDate   time.Time      `json:"startDate" db:"start_date"`
	EndDate     *time.Time     `json:"endDate,omitempty" db:"end_date"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

// IsCurrent reports whether the leader's term covers the given day.
func (l *Leader) IsCurrent(today time.Time) bool {
	day := today.Truncate(24 * time.Hour)
	return l.EndDate == nil || !l.EndDate.Before(day)
}
