package model

import "time"

// Event represents an event created by an admin.
//
// AdminID must reference a stored Admin (checked at creation). OrganizerID is
// carried as-is and never resolved against any repository. DateTime is an
// opaque string — it is required to be non-empty but never parsed.
type Event struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"adminId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateTime    string    `json:"dateTime"`
	Location    string    `json:"location"`
	OrganizerID string    `json:"organizerId"`
	CreatedAt   time.Time `json:"createdAt"`
}
