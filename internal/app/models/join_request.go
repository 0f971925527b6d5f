package models

import "time"

// JoinRequest is a membership application submitted through the public
// join form. All fields are required non-empty after trimming.
type JoinRequest struct {
	ID          int64     `json:"id" db:"id"`
	FullName    string    `json:"fullName" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Profession  string    `json:"profession" db:"profession"`
	Message     string    `json:"message" db:"message"`
	SubmittedAt time.Time `json:"submittedAt" db:"submitted_at"`
}
