package service

import (
	"context"

	"github.com/google/uuid"
)

// GenerationLimiter caps how often a user may request a new meal plan.
type GenerationLimiter interface {
	// Allow counts one generation attempt and reports whether it is within the limit.
	Allow(ctx context.Context, userID uuid.UUID) (bool, error)
}
