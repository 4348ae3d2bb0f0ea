package impl

import (
	"fmt"

	"nutriplan/internal/domain/entity"
)

var (
	fallbackBreakfast = entity.Meal{
		Name: "Oatmeal with Berries",
		Recipe: entity.Recipe{
			Ingredients:  []string{"1 cup oats", "1 cup milk", "1/2 cup mixed berries", "1 tbsp honey"},
			Instructions: []string{"Cook oats with milk for 5 minutes", "Top with berries and honey"},
		},
		Nutrition: entity.Nutrition{Calories: 350, Protein: 12, Carbs: 60, Fat: 7, Fiber: 8, Sugar: 18},
	}
	fallbackLunch = entity.Meal{
		Name: "Grilled Chicken Salad",
		Recipe: entity.Recipe{
			Ingredients:  []string{"150g chicken breast", "2 cups mixed greens", "1 tomato", "1/2 cucumber", "1 tbsp olive oil"},
			Instructions: []string{"Grill the chicken until cooked through", "Chop the vegetables", "Slice the chicken over the greens and dress with olive oil"},
		},
		Nutrition: entity.Nutrition{Calories: 450, Protein: 40, Carbs: 15, Fat: 22, Fiber: 5, Sugar: 6},
	}
	fallbackDinner = entity.Meal{
		Name: "Baked Salmon with Quinoa and Vegetables",
		Recipe: entity.Recipe{
			Ingredients:  []string{"150g salmon fillet", "1/2 cup quinoa", "1 cup broccoli", "1 carrot", "1 tsp lemon juice"},
			Instructions: []string{"Bake the salmon at 200C for 15 minutes", "Cook the quinoa", "Steam the broccoli and carrot", "Serve with lemon juice"},
		},
		Nutrition: entity.Nutrition{Calories: 550, Protein: 38, Carbs: 45, Fat: 20, Fiber: 7, Sugar: 5},
	}
)

// FallbackDays builds the deterministic placeholder plan used when generation fails.
// Every day serves the same three dishes, labelled with the day number.
func FallbackDays() []entity.Day {
	days := make([]entity.Day, 0, entity.DaysPerPlan)
	for n := 1; n <= entity.DaysPerPlan; n++ {
		days = append(days, entity.Day{
			Number:    n,
			Breakfast: fallbackMeal(fallbackBreakfast, n, "Breakfast"),
			Lunch:     fallbackMeal(fallbackLunch, n, "Lunch"),
			Dinner:    fallbackMeal(fallbackDinner, n, "Dinner"),
		})
	}

	return days
}

func fallbackMeal(template entity.Meal, day int, slot string) entity.Meal {
	meal := template
	meal.Name = fmt.Sprintf("Day %d %s: %s", day, slot, template.Name)
	meal.Recipe = entity.Recipe{
		Ingredients:  append([]string(nil), template.Recipe.Ingredients...),
		Instructions: append([]string(nil), template.Recipe.Instructions...),
	}

	return meal
}
