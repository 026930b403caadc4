package model

import "time"

// Registration links a volunteer to an event.
//
// Status is a free-form label. "Registered", "Attended" and "Missed" are the
// documented values, but any non-empty string is accepted and no endpoint
// ever transitions an existing record. AttendedAt is nil until set — and
// since registrations are create-only through the public surface, it stays
// nil.
//
// Neither EventID nor VolunteerID is checked against the corresponding
// repository, and nothing prevents the same volunteer registering twice.
type Registration struct {
	ID           string     `json:"id"`
	EventID      string     `json:"eventId"`
	VolunteerID  string     `json:"volunteerId"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registeredAt"`
	AttendedAt   *time.Time `json:"attendedAt"`
}
