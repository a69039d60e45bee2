package domain

import "time"

// User represents a registered account. Username is the primary identity
// and never changes after registration.
type User struct {
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Disabled     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
