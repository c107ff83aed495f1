package domain

import "time"

// User is the domain model for all account holders regardless of role.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Phone        string
	RoleID       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
