// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns a dietary profile and any number of meal plans.
type User struct {
	ID           uuid.UUID // Global unique identifier for the user.
	Username     string    // Login name; unique and case-sensitive.
	PasswordHash string    // bcrypt hash of the user's password.
	Profile      *Profile  // Dietary profile; nil until the user fills it in.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasProfile reports whether the user has stored a dietary profile.
func (u *User) HasProfile() bool {
	return u != nil && u.Profile != nil
}
