package usecase

import (
	"context"

	"nutriplan/internal/domain/entity"

	"github.com/google/uuid"
)

// SetDiningOutInput selects one meal of a plan and its new dining-out flag.
type SetDiningOutInput struct {
	PlanID    uuid.UUID       `json:"-"`
	Day       int             `json:"day" validate:"required"`
	MealType  entity.MealType `json:"meal_type" validate:"required,oneof=breakfast lunch dinner"`
	DiningOut *bool           `json:"dining_out" validate:"required"`
	// Version, when sent, must match the stored plan version.
	Version *int64 `json:"version,omitempty" validate:"omitempty,gte=1"`
}

// GroceryList is the flat ingredient list of a plan's home-cooked meals.
type GroceryList struct {
	PlanID      uuid.UUID `json:"meal_plan_id"`
	Ingredients []string  `json:"ingredients"`
}

// MealPlanUsecase generates plans and maintains their derived views.
type MealPlanUsecase interface {
	// GenerateMealPlan creates and stores a new plan from the user's profile.
	GenerateMealPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error)
	GetLatestMealPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error)
	GetMealPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.MealPlan, error)
	// SetDiningOut flips one meal's flag and returns the updated plan.
	SetDiningOut(ctx context.Context, userID uuid.UUID, input *SetDiningOutInput) (*entity.MealPlan, error)
	GetGroceryList(ctx context.Context, userID, planID uuid.UUID) (*GroceryList, error)
	// GetGroceryListQR renders a PNG QR code linking to the plan's grocery list.
	GetGroceryListQR(ctx context.Context, userID, planID uuid.UUID) ([]byte, error)
}
