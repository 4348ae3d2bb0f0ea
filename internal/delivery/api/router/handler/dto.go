// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"nutriplan/internal/domain/entity"

	"github.com/google/uuid"
)

// UserProfileResponse is returned by the profile endpoints. Profile is null until set.
type UserProfileResponse struct {
	ID       uuid.UUID       `json:"id"`
	Username string          `json:"username"`
	Profile  *entity.Profile `json:"profile"`
}

// MealPlanResponse is the public shape of a stored plan.
type MealPlanResponse struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	Version   int64        `json:"version"`
	Days      []entity.Day `json:"days"`
}

func toMealPlanResponse(plan *entity.MealPlan) *MealPlanResponse {
	return &MealPlanResponse{
		ID:        plan.ID,
		UserID:    plan.UserID,
		CreatedAt: plan.CreatedAt,
		Version:   plan.Version,
		Days:      plan.Days,
	}
}
