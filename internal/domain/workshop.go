package domain

import "time"

// Workshop represents one offering from the workshop catalog
type Workshop struct {
	ID          string
	Title       string
	Description *string
	CreatedAt   time.Time
}
