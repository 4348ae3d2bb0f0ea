package usecase

import (
	"context"

	"nutriplan/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase reads and replaces a user's dietary profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *ProfileInput) (*entity.Profile, error)
}

// ProfileInput is the full profile; every update replaces the stored one.
type ProfileInput struct {
	Gender              string   `json:"gender" validate:"required"`
	Age                 int      `json:"age" validate:"required,gt=0,lte=150"`
	Weight              float64  `json:"weight" validate:"required,gt=0"`
	Height              float64  `json:"height" validate:"required,gt=0"`
	ActivityLevel       string   `json:"activity_level" validate:"required,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	FitnessGoal         string   `json:"fitness_goal" validate:"required"`
	CalorieTarget       *int     `json:"calorie_target,omitempty" validate:"omitempty,gt=0"`
	ProteinTarget       *int     `json:"protein_target,omitempty" validate:"omitempty,gt=0"`
	FiberTarget         *int     `json:"fiber_target,omitempty" validate:"omitempty,gt=0"`
	DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty,dive,required"`
	Allergies           []string `json:"allergies" validate:"omitempty,dive,required"`
}

// ToEntity converts the input into a Profile. Nil lists become empty lists.
func (in *ProfileInput) ToEntity() *entity.Profile {
	restrictions := in.DietaryRestrictions
	if restrictions == nil {
		restrictions = []string{}
	}
	allergies := in.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	return &entity.Profile{
		Gender:              in.Gender,
		Age:                 in.Age,
		Weight:              in.Weight,
		Height:              in.Height,
		ActivityLevel:       entity.ActivityLevel(in.ActivityLevel),
		FitnessGoal:         in.FitnessGoal,
		CalorieTarget:       in.CalorieTarget,
		ProteinTarget:       in.ProteinTarget,
		FiberTarget:         in.FiberTarget,
		DietaryRestrictions: restrictions,
		Allergies:           allergies,
	}
}
