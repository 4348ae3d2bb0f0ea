// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"nutriplan/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user, profile included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. A duplicate username yields ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile replaces the user's profile wholesale.
	UpdateProfile(ctx context.Context, userID uuid.UUID, profile *entity.Profile) error
}
