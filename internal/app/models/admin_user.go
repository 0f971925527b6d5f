package models

import "time"

// AdminUser is an account allowed to edit site content through the
// admin API. Public content routes never require one.
type AdminUser struct {
	ID        int64      `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"-" db:"password_hash"`
	FullName  string     `json:"fullName" db:"full_name"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	LastLogin *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
