package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MealPlanModel mirrors the 'meal_plans' table.
type MealPlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_meal_plans_user_created,priority:1"`
	Source    string    `gorm:"type:varchar(20);not null"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"index:idx_meal_plans_user_created,priority:2,sort:desc"`

	Meals []MealPlanMealModel `gorm:"foreignKey:MealPlanID"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// MealPlanMealModel mirrors 'meal_plan_meals': one row per (plan, day, meal type).
type MealPlanMealModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key"`
	MealPlanID   uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_meal_plan_meals_slot,priority:1"`
	Day          int                         `gorm:"type:smallint;not null;uniqueIndex:uq_meal_plan_meals_slot,priority:2"`
	MealType     string                      `gorm:"type:varchar(20);not null;uniqueIndex:uq_meal_plan_meals_slot,priority:3"`
	Name         string                      `gorm:"type:text;not null"`
	Ingredients  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Instructions datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Calories     float64                     `gorm:"type:numeric;not null"`
	Protein      float64                     `gorm:"type:numeric;not null"`
	Carbs        float64                     `gorm:"type:numeric;not null"`
	Fat          float64                     `gorm:"type:numeric;not null"`
	Fiber        float64                     `gorm:"type:numeric;not null"`
	Sugar        float64                     `gorm:"type:numeric;not null"`
	DiningOut    bool                        `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanMealModel) TableName() string {
	return "meal_plan_meals"
}
