// Package auth provides password hashing for admin signup.
//
// Passwords are hashed with bcrypt before they reach storage. The hash output
// is self-contained (version, cost and salt are embedded), so it is stored as
// a single string. Note there is no login surface in this service — hashes
// are written at signup and never compared afterwards.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor, roughly a few hundred milliseconds
// per hash on current server hardware.
const defaultCost = 12

// PasswordService hashes and verifies passwords. The cost is injectable so
// tests can run at the bcrypt minimum instead of paying the full work factor
// on every call.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the default cost.
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceForTest creates a PasswordService with the minimum
// bcrypt cost the library allows. Not for production use.
func NewPasswordServiceForTest() *PasswordService {
	return &PasswordService{cost: bcrypt.MinCost}
}

// Hash hashes a plaintext password. bcrypt silently truncates input beyond
// 72 bytes, so anything longer is rejected outright.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches a stored hash. The comparison is
// constant-time. Returns nil on match.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
