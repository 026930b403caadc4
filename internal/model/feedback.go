package model

import "time"

// Feedback is a volunteer's feedback on an event. Rating is any number — no
// range is enforced. The referenced IDs are not checked for existence.
type Feedback struct {
	ID          string    `json:"id"`
	VolunteerID string    `json:"volunteerId"`
	EventID     string    `json:"eventId"`
	Feedback    string    `json:"feedback"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}
