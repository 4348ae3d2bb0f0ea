package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DaysPerPlan is the number of days every meal plan covers.
const DaysPerPlan = 7

// GenerationSource records whether a plan came from the generator or the fallback.
type GenerationSource string

const (
	SourceGenerated GenerationSource = "generated"
	SourceFallback  GenerationSource = "fallback"
)

// MealPlan is a 7-day meal schedule owned by exactly one user.
type MealPlan struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Source    GenerationSource
	Version   int64 // bumped on every dining-status change
	CreatedAt time.Time
	Days      []Day
}

// Day holds the three meals of one plan day. Number runs from 1 to 7.
type Day struct {
	Number    int  `json:"day"`
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Dinner    Meal `json:"dinner"`
}

// Meal is a single dish in a plan.
type Meal struct {
	Name      string    `json:"name"`
	Recipe    Recipe    `json:"recipe"`
	Nutrition Nutrition `json:"nutrition"`
	DiningOut bool      `json:"dining_out"`
}

// Recipe lists ingredients and preparation steps in order.
type Recipe struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// Nutrition carries the per-meal nutrition estimate.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Meal returns the meal in the given slot, or nil for an unknown slot.
func (d *Day) Meal(mealType MealType) *Meal {
	switch mealType {
	case MealBreakfast:
		return &d.Breakfast
	case MealLunch:
		return &d.Lunch
	case MealDinner:
		return &d.Dinner
	default:
		return nil
	}
}

// Day looks a day up by its number, not its position.
func (p *MealPlan) Day(number int) *Day {
	for i := range p.Days {
		if p.Days[i].Number == number {
			return &p.Days[i]
		}
	}

	return nil
}

// Meal looks up a single meal by day number and slot.
func (p *MealPlan) Meal(day int, mealType MealType) (*Meal, bool) {
	d := p.Day(day)
	if d == nil {
		return nil, false
	}

	meal := d.Meal(mealType)

	return meal, meal != nil
}

// ResetDiningOut clears the dining-out flag on every meal. Calling it twice is harmless.
func (p *MealPlan) ResetDiningOut() {
	for i := range p.Days {
		for _, mealType := range MealTypes {
			p.Days[i].Meal(mealType).DiningOut = false
		}
	}
}

// GroceryIngredients lists the ingredients of every meal not eaten out, in day
// order and breakfast, lunch, dinner within a day. Duplicates are kept.
func (p *MealPlan) GroceryIngredients() []string {
	days := slices.Clone(p.Days)
	slices.SortStableFunc(days, func(a, b Day) int {
		return a.Number - b.Number
	})

	ingredients := make([]string, 0)
	for i := range days {
		for _, mealType := range MealTypes {
			meal := days[i].Meal(mealType)
			if meal.DiningOut {
				continue
			}
			ingredients = append(ingredients, meal.Recipe.Ingredients...)
		}
	}

	return ingredients
}

// HasValidShape reports whether the plan has exactly DaysPerPlan days numbered
// 1..DaysPerPlan in order.
func (p *MealPlan) HasValidShape() bool {
	if len(p.Days) != DaysPerPlan {
		return false
	}
	for i := range p.Days {
		if p.Days[i].Number != i+1 {
			return false
		}
	}

	return true
}
