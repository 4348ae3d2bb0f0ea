package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeal(label string) Meal {
	return Meal{
		Name: label,
		Recipe: Recipe{
			Ingredients:  []string{label + "-a", label + "-b"},
			Instructions: []string{"cook " + label},
		},
		Nutrition: Nutrition{Calories: 500, Protein: 30, Carbs: 50, Fat: 15, Fiber: 8, Sugar: 5},
	}
}

func testPlan() *MealPlan {
	plan := &MealPlan{}
	for n := 1; n <= DaysPerPlan; n++ {
		plan.Days = append(plan.Days, Day{
			Number:    n,
			Breakfast: testMeal(fmt.Sprintf("d%d-breakfast", n)),
			Lunch:     testMeal(fmt.Sprintf("d%d-lunch", n)),
			Dinner:    testMeal(fmt.Sprintf("d%d-dinner", n)),
		})
	}

	return plan
}

func TestMealPlan_GroceryIngredients_Order(t *testing.T) {
	plan := testPlan()

	got := plan.GroceryIngredients()

	require.Len(t, got, DaysPerPlan*3*2)
	assert.Equal(t, []string{
		"d1-breakfast-a", "d1-breakfast-b",
		"d1-lunch-a", "d1-lunch-b",
		"d1-dinner-a", "d1-dinner-b",
	}, got[:6])
	assert.Equal(t, "d7-dinner-b", got[len(got)-1])
}

func TestMealPlan_GroceryIngredients_SkipsDiningOut(t *testing.T) {
	plan := testPlan()
	plan.Days[0].Breakfast.DiningOut = true

	got := plan.GroceryIngredients()

	assert.Len(t, got, DaysPerPlan*3*2-2)
	assert.NotContains(t, got, "d1-breakfast-a")
	assert.Equal(t, "d1-lunch-a", got[0])

	plan.Days[0].Breakfast.DiningOut = false
	assert.Equal(t, "d1-breakfast-a", plan.GroceryIngredients()[0])
}

func TestMealPlan_GroceryIngredients_KeepsDuplicates(t *testing.T) {
	plan := testPlan()
	for i := range plan.Days {
		plan.Days[i].Breakfast.Recipe.Ingredients = []string{"2 eggs"}
	}

	count := 0
	for _, ingredient := range plan.GroceryIngredients() {
		if ingredient == "2 eggs" {
			count++
		}
	}

	assert.Equal(t, DaysPerPlan, count)
}

func TestMealPlan_GroceryIngredients_UsesDayNumberOrder(t *testing.T) {
	plan := testPlan()
	plan.Days[0], plan.Days[1] = plan.Days[1], plan.Days[0]

	got := plan.GroceryIngredients()

	assert.Equal(t, "d1-breakfast-a", got[0])
	// stored order is untouched
	assert.Equal(t, 2, plan.Days[0].Number)
}

func TestMealPlan_GroceryIngredients_AllDiningOut(t *testing.T) {
	plan := testPlan()
	for i := range plan.Days {
		for _, mealType := range MealTypes {
			plan.Days[i].Meal(mealType).DiningOut = true
		}
	}

	got := plan.GroceryIngredients()

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMealPlan_ResetDiningOut_Idempotent(t *testing.T) {
	plan := testPlan()
	plan.Days[2].Dinner.DiningOut = true
	plan.Days[5].Lunch.DiningOut = true

	plan.ResetDiningOut()
	first := plan.GroceryIngredients()
	plan.ResetDiningOut()

	assert.Equal(t, first, plan.GroceryIngredients())
	for i := range plan.Days {
		for _, mealType := range MealTypes {
			assert.False(t, plan.Days[i].Meal(mealType).DiningOut)
		}
	}
}

func TestMealPlan_Meal(t *testing.T) {
	plan := testPlan()

	meal, ok := plan.Meal(3, MealDinner)
	require.True(t, ok)
	assert.Equal(t, "d3-dinner", meal.Name)

	_, ok = plan.Meal(8, MealDinner)
	assert.False(t, ok)

	_, ok = plan.Meal(1, MealType("brunch"))
	assert.False(t, ok)
}

func TestMealPlan_HasValidShape(t *testing.T) {
	assert.True(t, testPlan().HasValidShape())

	short := testPlan()
	short.Days = short.Days[:6]
	assert.False(t, short.HasValidShape())

	swapped := testPlan()
	swapped.Days[0], swapped.Days[1] = swapped.Days[1], swapped.Days[0]
	assert.False(t, swapped.HasValidShape())
}

func TestActivityLevel_IsValid(t *testing.T) {
	assert.True(t, ActivityModeratelyActive.IsValid())
	assert.False(t, ActivityLevel("couch").IsValid())
}
