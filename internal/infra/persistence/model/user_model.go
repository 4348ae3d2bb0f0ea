package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	// Profile is stored as JSON "null" until the user fills it in.
	Profile   datatypes.JSONType[*ProfileDocument] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileDocument is the JSON shape of a dietary profile.
type ProfileDocument struct {
	Gender              string   `json:"gender"`
	Age                 int      `json:"age"`
	Weight              float64  `json:"weight"`
	Height              float64  `json:"height"`
	ActivityLevel       string   `json:"activity_level"`
	FitnessGoal         string   `json:"fitness_goal"`
	CalorieTarget       *int     `json:"calorie_target,omitempty"`
	ProteinTarget       *int     `json:"protein_target,omitempty"`
	FiberTarget         *int     `json:"fiber_target,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
}
