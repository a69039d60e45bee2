package domain

import "time"

// Book is a single catalog entry.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
