package repository

import (
	"context"

	"nutriplan/internal/domain/entity"

	"github.com/google/uuid"
)

// SetDiningOutParams targets one meal of one plan.
type SetDiningOutParams struct {
	PlanID    uuid.UUID
	UserID    uuid.UUID
	Day       int
	MealType  entity.MealType
	DiningOut bool
	// ExpectedVersion, when set, makes the update conditional on the stored version.
	ExpectedVersion *int64
}

// MealPlanRepository persists meal plans. Every lookup is scoped to the owning user.
type MealPlanRepository interface {
	// Create stores the plan and all of its meals.
	Create(ctx context.Context, plan *entity.MealPlan) error

	// FindLatestByUser returns the user's most recently created plan.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error)

	// FindByIDForUser returns the plan only when userID owns it.
	FindByIDForUser(ctx context.Context, planID, userID uuid.UUID) (*entity.MealPlan, error)

	// SetMealDiningOut updates a single meal's flag and returns the plan's new version.
	SetMealDiningOut(ctx context.Context, params SetDiningOutParams) (int64, error)
}
