package domain

import "time"

// Notification is a per-user message produced by domain events.
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
