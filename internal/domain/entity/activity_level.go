package entity

// ActivityLevel describes how physically active a user is.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// String returns the string representation of the ActivityLevel.
func (a ActivityLevel) String() string {
	return string(a)
}

// IsValid checks if the ActivityLevel is one of the known values.
func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive:
		return true
	default:
		return false
	}
}
