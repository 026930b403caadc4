// Package model defines the data structures used throughout the application.
// All IDs are opaque unique strings (xid), assigned by the repository at
// creation time and never reused.
package model

// Admin represents an administrator account.
//
// Password holds the bcrypt hash, never the plaintext — the service layer
// hashes before the record ever reaches storage. The hash is returned in API
// responses as stored; there is no login endpoint that verifies it.
type Admin struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"` // unique across admins, enforced by scan at creation
	Password string `json:"password"`
}
