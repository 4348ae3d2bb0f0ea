package entity

// MealType names one of the three meal slots of a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes lists the slots in the order a day is eaten.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

// String returns the string representation of the MealType.
func (m MealType) String() string {
	return string(m)
}

// IsValid checks if the MealType is one of the three slots.
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	default:
		return false
	}
}
