package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"nutriplan/internal/domain/entity"
	"nutriplan/internal/domain/service"
	mockSvc "nutriplan/internal/mocks/service"
	"nutriplan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPlanGenerator(t *testing.T) (usecase.PlanGenerator, *mockSvc.MockTextGenerator) {
	textGenerator := mockSvc.NewMockTextGenerator(t)

	return NewPlanGenerator(PlanGeneratorParams{
		TextGenerator: textGenerator,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	}), textGenerator
}

// validReply renders a well-formed 7-day reply with recognizable meal names.
func validReply(t *testing.T) string {
	t.Helper()

	days := FallbackDays()
	for i := range days {
		days[i].Breakfast.Name = "Generated breakfast"
	}
	body, err := json.Marshal(map[string]any{"days": days})
	require.NoError(t, err)

	return string(body)
}

func assertCompletePlan(t *testing.T, days []entity.Day) {
	t.Helper()

	plan := &entity.MealPlan{Days: days}
	require.True(t, plan.HasValidShape())
	for _, day := range days {
		for _, mealType := range entity.MealTypes {
			meal := day.Meal(mealType)
			assert.NotEmpty(t, meal.Name)
			assert.NotEmpty(t, meal.Recipe.Ingredients)
			assert.NotEmpty(t, meal.Recipe.Instructions)
			assert.False(t, meal.DiningOut)
		}
	}
}

func TestPlanGenerator_Generate_ParsesReply(t *testing.T) {
	tests := []struct {
		name  string
		reply func(body string) string
	}{
		{name: "bare JSON", reply: func(body string) string { return body }},
		{name: "json code fence", reply: func(body string) string { return "```json\n" + body + "\n```" }},
		{name: "plain code fence", reply: func(body string) string { return "```\n" + body + "\n```" }},
		{name: "surrounding prose", reply: func(body string) string {
			return "Here is your plan:\n" + body + "\nEnjoy your meals!"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, textGenerator := createTestPlanGenerator(t)
			reply := tt.reply(validReply(t))
			textGenerator.EXPECT().Generate(mock.Anything, mock.AnythingOfType("service.TextRequest")).Return(reply, nil)

			result := gen.Generate(context.Background(), newTestProfile())

			assert.Equal(t, entity.SourceGenerated, result.Source)
			assert.NoError(t, result.Cause)
			assertCompletePlan(t, result.Days)
			assert.Equal(t, "Generated breakfast", result.Days[0].Breakfast.Name)
		})
	}
}

func TestPlanGenerator_Generate_FallsBack(t *testing.T) {
	sixDays := func() string {
		days := FallbackDays()[:6]
		body, _ := json.Marshal(map[string]any{"days": days})

		return string(body)
	}
	renumbered := func() string {
		days := FallbackDays()
		days[2].Number = 9
		body, _ := json.Marshal(map[string]any{"days": days})

		return string(body)
	}
	dropField := func(field string) string {
		days := FallbackDays()
		body, _ := json.Marshal(map[string]any{"days": days})

		return strings.Replace(string(body), `"`+field+`":`, `"unused_`+field+`":`, 1)
	}

	tests := []struct {
		name     string
		reply    string
		upstream error
	}{
		{name: "upstream error", upstream: errors.New("connection reset")},
		{name: "generator disabled", upstream: service.ErrGeneratorDisabled},
		{name: "garbage text", reply: "I cannot help with that."},
		{name: "truncated JSON", reply: `{"days": [{"day": 1, "breakfast": {"name": "Eggs"`},
		{name: "missing days key", reply: `{"plan": []}`},
		{name: "six days", reply: sixDays()},
		{name: "wrong day numbers", reply: renumbered()},
		{name: "missing sugar", reply: dropField("sugar")},
		{name: "missing instructions", reply: dropField("instructions")},
		{name: "missing lunch", reply: dropField("lunch")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, textGenerator := createTestPlanGenerator(t)
			textGenerator.EXPECT().Generate(mock.Anything, mock.AnythingOfType("service.TextRequest")).Return(tt.reply, tt.upstream)

			result := gen.Generate(context.Background(), newTestProfile())

			assert.Equal(t, entity.SourceFallback, result.Source)
			assert.Error(t, result.Cause)
			assert.Equal(t, FallbackDays(), result.Days)
			assertCompletePlan(t, result.Days)
		})
	}
}

func TestPlanGenerator_Generate_Request(t *testing.T) {
	gen, textGenerator := createTestPlanGenerator(t)

	var requests []service.TextRequest
	textGenerator.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("service.TextRequest")).
		Run(func(ctx context.Context, req service.TextRequest) {
			requests = append(requests, req)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(validReply(t), nil).
		Times(2)

	gen.Generate(context.Background(), newTestProfile())
	gen.Generate(context.Background(), newTestProfile())

	require.Len(t, requests, 2)
	req := requests[0]
	assert.Equal(t, "test-model", req.Model)
	assert.Equal(t, 4096, req.MaxTokens)
	assert.Equal(t, nutritionistSystemMessage, req.System)
	assert.True(t, strings.HasPrefix(req.SessionID, "meal-plan-"))
	assert.NotEqual(t, requests[0].SessionID, requests[1].SessionID)
}

func TestBuildMealPlanPrompt(t *testing.T) {
	t.Run("full profile", func(t *testing.T) {
		prompt := BuildMealPlanPrompt(newTestProfile())

		assert.Contains(t, prompt, "Gender: female")
		assert.Contains(t, prompt, "Age: 32")
		assert.Contains(t, prompt, "Weight: 68.5 kg")
		assert.Contains(t, prompt, "Activity Level: moderately_active")
		assert.Contains(t, prompt, "Fitness Goal: weight_loss")
		assert.Contains(t, prompt, "Calorie Target: 2000 kcal/day")
		assert.Contains(t, prompt, "Protein Target: Calculate based on profile")
		assert.Contains(t, prompt, "Dietary Restrictions: vegetarian")
		assert.Contains(t, prompt, "Allergies: peanuts, shellfish")
		assert.Contains(t, prompt, "exactly 7 days")
	})

	t.Run("empty profile", func(t *testing.T) {
		prompt := BuildMealPlanPrompt(&entity.Profile{})

		assert.Contains(t, prompt, "Gender: Not specified")
		assert.Contains(t, prompt, "Age: Not specified")
		assert.Contains(t, prompt, "Dietary Restrictions: None")
		assert.Contains(t, prompt, "Allergies: None")
	})
}

func TestNormalizeReply(t *testing.T) {
	assert.Equal(t, `{"a":1}`, NormalizeReply("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, NormalizeReply(`Sure! {"a":{"b":2}} Hope this helps.`))
	assert.Equal(t, "no braces here", NormalizeReply("  no braces here  "))
}

func TestFallbackDays(t *testing.T) {
	days := FallbackDays()

	assertCompletePlan(t, days)
	assert.Equal(t, "Day 3 Dinner: Baked Salmon with Quinoa and Vegetables", days[2].Dinner.Name)
	assert.Equal(t, days[0].Lunch.Recipe, days[6].Lunch.Recipe)

	days[0].Breakfast.Recipe.Ingredients[0] = "changed"
	assert.NotEqual(t, "changed", FallbackDays()[0].Breakfast.Recipe.Ingredients[0])
}
