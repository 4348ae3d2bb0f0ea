package entity

// Profile is a user's dietary profile. It is always replaced as a whole.
type Profile struct {
	Gender              string        `json:"gender"`
	Age                 int           `json:"age"`
	Weight              float64       `json:"weight"` // kg
	Height              float64       `json:"height"` // cm
	ActivityLevel       ActivityLevel `json:"activity_level"`
	FitnessGoal         string        `json:"fitness_goal"`
	CalorieTarget       *int          `json:"calorie_target,omitempty"`
	ProteinTarget       *int          `json:"protein_target,omitempty"` // grams
	FiberTarget         *int          `json:"fiber_target,omitempty"`   // grams
	DietaryRestrictions []string      `json:"dietary_restrictions"`
	Allergies           []string      `json:"allergies"`
}
