package model

import "time"

// Volunteer represents a registered volunteer.
//
// Skills is an ordered list — the order the caller supplied is the order we
// store and return. CreatedAt is set by the repository, never by the caller.
type Volunteer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // unique across volunteers, enforced by scan at creation
	Contact   string    `json:"contact"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}
