package usecase

import (
	"context"

	"nutriplan/internal/domain/entity"
)

// GenerationResult is the outcome of one generation attempt. Days is always a
// complete 7x3 schedule; Source tells whether it came from the model or the
// fallback, and Cause holds the reason for a fallback.
type GenerationResult struct {
	Days   []entity.Day
	Source entity.GenerationSource
	Cause  error
}

// PlanGenerator turns a dietary profile into a 7-day schedule. It never fails:
// any upstream or parsing problem yields the deterministic fallback plan.
type PlanGenerator interface {
	Generate(ctx context.Context, profile *entity.Profile) *GenerationResult
}
