package impl

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"nutriplan/config"
	"nutriplan/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     12,
			AccessTokenTTL: time.Hour,
		},
		Generator: &config.GeneratorConfig{
			Model:     "test-model",
			MaxTokens: 4096,
			Timeout:   5 * time.Second,
		},
	}
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func newTestProfile() *entity.Profile {
	return &entity.Profile{
		Gender:              "female",
		Age:                 32,
		Weight:              68.5,
		Height:              170,
		ActivityLevel:       entity.ActivityModeratelyActive,
		FitnessGoal:         "weight_loss",
		CalorieTarget:       intPtr(2000),
		DietaryRestrictions: []string{"vegetarian"},
		Allergies:           []string{"peanuts", "shellfish"},
	}
}

func newTestUser(withProfile bool) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}
	if withProfile {
		user.Profile = newTestProfile()
	}

	return user
}

// newTestMealPlan builds a complete plan whose meals carry distinct ingredients.
func newTestMealPlan(userID uuid.UUID) *entity.MealPlan {
	plan := &entity.MealPlan{
		ID:      uuid.New(),
		UserID:  userID,
		Source:  entity.SourceGenerated,
		Version: 1,
		Days:    FallbackDays(),
	}
	for i := range plan.Days {
		for _, mealType := range entity.MealTypes {
			meal := plan.Days[i].Meal(mealType)
			meal.Recipe.Ingredients = []string{
				fmt.Sprintf("day%d-%s-a", plan.Days[i].Number, mealType),
				fmt.Sprintf("day%d-%s-b", plan.Days[i].Number, mealType),
			}
		}
	}

	return plan
}
