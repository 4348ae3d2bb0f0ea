package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nutriplan/config"
	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/domain/entity"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"
	"nutriplan/internal/usecase"
	"nutriplan/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const nutritionistSystemMessage = "You are a professional nutritionist who creates detailed meal plans in JSON format."

// errInvalidPlan marks replies that parsed but do not describe a full plan.
var errInvalidPlan = errors.New("generated plan has invalid structure")

// planGenerator implements usecase.PlanGenerator on top of a TextGenerator.
type planGenerator struct {
	textGenerator service.TextGenerator
	model         string
	maxTokens     int
	timeout       time.Duration
	logger        *slog.Logger
}

// PlanGeneratorParams holds dependencies for the plan generator, injected by Fx.
type PlanGeneratorParams struct {
	fx.In

	TextGenerator service.TextGenerator
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPlanGenerator is the constructor for planGenerator.
func NewPlanGenerator(params PlanGeneratorParams) usecase.PlanGenerator {
	gen := &planGenerator{
		textGenerator: params.TextGenerator,
		logger:        params.Logger,
	}
	if cfg := params.Config.Generator; cfg != nil {
		gen.model = cfg.Model
		gen.maxTokens = cfg.MaxTokens
		gen.timeout = cfg.Timeout
	}

	return gen
}

func (g *planGenerator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Generate asks the model for a plan and falls back to the placeholder plan on
// any upstream, parsing or structural failure.
func (g *planGenerator) Generate(ctx context.Context, profile *entity.Profile) *usecase.GenerationResult {
	sessionID := "meal-plan-" + uuid.NewString()
	start := time.Now()

	days, err := g.generate(ctx, profile, sessionID)
	elapsed := util.FormatDuration(time.Since(start))
	if err != nil {
		g.log(ctx).Warn("Meal plan generation failed, using fallback plan",
			slog.String("session_id", sessionID),
			slog.String("elapsed", elapsed),
			slog.Any("error", err),
		)

		return &usecase.GenerationResult{
			Days:   FallbackDays(),
			Source: entity.SourceFallback,
			Cause:  err,
		}
	}

	g.log(ctx).Debug("Meal plan generated",
		slog.String("session_id", sessionID),
		slog.String("elapsed", elapsed),
	)

	return &usecase.GenerationResult{
		Days:   days,
		Source: entity.SourceGenerated,
	}
}

func (g *planGenerator) generate(ctx context.Context, profile *entity.Profile, sessionID string) ([]entity.Day, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	reply, err := g.textGenerator.Generate(ctx, service.TextRequest{
		Model:     g.model,
		System:    nutritionistSystemMessage,
		Prompt:    BuildMealPlanPrompt(profile),
		MaxTokens: g.maxTokens,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "text generation failed")
	}

	return ParseMealPlan(reply)
}

// BuildMealPlanPrompt renders the profile and the required reply structure.
func BuildMealPlanPrompt(profile *entity.Profile) string {
	if profile == nil {
		profile = &entity.Profile{}
	}

	var b strings.Builder
	b.WriteString("Create a 7-day meal plan for a person with this profile:\n\n")
	fmt.Fprintf(&b, "Gender: %s\n", orDefault(profile.Gender, "Not specified"))
	fmt.Fprintf(&b, "Age: %s\n", intOrDefault(profile.Age, "Not specified"))
	fmt.Fprintf(&b, "Weight: %s kg\n", floatOrDefault(profile.Weight, "Not specified"))
	fmt.Fprintf(&b, "Height: %s cm\n", floatOrDefault(profile.Height, "Not specified"))
	fmt.Fprintf(&b, "Activity Level: %s\n", orDefault(profile.ActivityLevel.String(), "Not specified"))
	fmt.Fprintf(&b, "Fitness Goal: %s\n", orDefault(profile.FitnessGoal, "Not specified"))
	fmt.Fprintf(&b, "Calorie Target: %s kcal/day\n", targetOrDefault(profile.CalorieTarget))
	fmt.Fprintf(&b, "Protein Target: %s g/day\n", targetOrDefault(profile.ProteinTarget))
	fmt.Fprintf(&b, "Fiber Target: %s g/day\n", targetOrDefault(profile.FiberTarget))
	fmt.Fprintf(&b, "Dietary Restrictions: %s\n", listOrNone(profile.DietaryRestrictions))
	fmt.Fprintf(&b, "Allergies: %s\n", listOrNone(profile.Allergies))
	b.WriteString(`
Plan exactly 7 days numbered 1 to 7, each with breakfast, lunch and dinner.
Every meal needs a name, a recipe with an ingredient list (with quantities) and
step-by-step instructions, and nutrition values for calories, protein, carbs,
fat, fiber and sugar given as plain numbers.
Never use an ingredient listed under allergies and respect every dietary restriction.
Keep the daily totals close to the targets.

Reply with a single JSON object and nothing else, using this structure:
{
  "days": [
    {
      "day": 1,
      "breakfast": {
        "name": "Meal name",
        "recipe": {
          "ingredients": ["1 cup ingredient"],
          "instructions": ["Step one"]
        },
        "nutrition": {"calories": 400, "protein": 25, "carbs": 45, "fat": 12, "fiber": 8, "sugar": 5}
      },
      "lunch": { ... },
      "dinner": { ... }
    }
  ]
}
`)

	return b.String()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func intOrDefault(value int, fallback string) string {
	if value <= 0 {
		return fallback
	}

	return fmt.Sprintf("%d", value)
}

func floatOrDefault(value float64, fallback string) string {
	if value <= 0 {
		return fallback
	}

	return fmt.Sprintf("%g", value)
}

func targetOrDefault(target *int) string {
	if target == nil {
		return "Calculate based on profile"
	}

	return fmt.Sprintf("%d", *target)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}

	return strings.Join(items, ", ")
}

// NormalizeReply strips code fences and any prose around the outermost JSON object.
func NormalizeReply(reply string) string {
	text := strings.TrimSpace(reply)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return text
}

// Reply shapes use pointers so missing fields can be told apart from zeros.
type replyPlan struct {
	Days *[]replyDay `json:"days"`
}

type replyDay struct {
	Day       *int       `json:"day"`
	Breakfast *replyMeal `json:"breakfast"`
	Lunch     *replyMeal `json:"lunch"`
	Dinner    *replyMeal `json:"dinner"`
}

type replyMeal struct {
	Name      string          `json:"name"`
	Recipe    *replyRecipe    `json:"recipe"`
	Nutrition *replyNutrition `json:"nutrition"`
}

type replyRecipe struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

type replyNutrition struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
	Sugar    *float64 `json:"sugar"`
}

// ParseMealPlan normalizes a model reply and checks it describes 7 complete days.
func ParseMealPlan(reply string) ([]entity.Day, error) {
	var parsed replyPlan
	if err := json.Unmarshal([]byte(NormalizeReply(reply)), &parsed); err != nil {
		return nil, errors.Wrap(err, "reply is not valid JSON")
	}

	if parsed.Days == nil {
		return nil, errors.Wrap(errInvalidPlan, "missing days")
	}
	if len(*parsed.Days) != entity.DaysPerPlan {
		return nil, errors.Wrapf(errInvalidPlan, "expected %d days, got %d", entity.DaysPerPlan, len(*parsed.Days))
	}

	days := make([]entity.Day, 0, entity.DaysPerPlan)
	for i, rd := range *parsed.Days {
		if rd.Day == nil || *rd.Day != i+1 {
			return nil, errors.Wrapf(errInvalidPlan, "day at position %d is not numbered %d", i+1, i+1)
		}

		day := entity.Day{Number: i + 1}
		for _, mealType := range entity.MealTypes {
			meal, err := toMeal(rd.meal(mealType))
			if err != nil {
				return nil, errors.Wrapf(err, "day %d %s", i+1, mealType)
			}
			*day.Meal(mealType) = meal
		}
		days = append(days, day)
	}

	return days, nil
}

func (d *replyDay) meal(mealType entity.MealType) *replyMeal {
	switch mealType {
	case entity.MealBreakfast:
		return d.Breakfast
	case entity.MealLunch:
		return d.Lunch
	case entity.MealDinner:
		return d.Dinner
	default:
		return nil
	}
}

func toMeal(rm *replyMeal) (entity.Meal, error) {
	switch {
	case rm == nil:
		return entity.Meal{}, errors.Wrap(errInvalidPlan, "meal missing")
	case strings.TrimSpace(rm.Name) == "":
		return entity.Meal{}, errors.Wrap(errInvalidPlan, "meal name missing")
	case rm.Recipe == nil || len(rm.Recipe.Ingredients) == 0:
		return entity.Meal{}, errors.Wrap(errInvalidPlan, "ingredients missing")
	case len(rm.Recipe.Instructions) == 0:
		return entity.Meal{}, errors.Wrap(errInvalidPlan, "instructions missing")
	case rm.Nutrition == nil:
		return entity.Meal{}, errors.Wrap(errInvalidPlan, "nutrition missing")
	}

	n := rm.Nutrition
	if n.Calories == nil || n.Protein == nil || n.Carbs == nil || n.Fat == nil || n.Fiber == nil || n.Sugar == nil {
		return entity.Meal{}, errors.Wrap(errInvalidPlan, "nutrition field missing")
	}

	return entity.Meal{
		Name: rm.Name,
		Recipe: entity.Recipe{
			Ingredients:  rm.Recipe.Ingredients,
			Instructions: rm.Recipe.Instructions,
		},
		Nutrition: entity.Nutrition{
			Calories: *n.Calories,
			Protein:  *n.Protein,
			Carbs:    *n.Carbs,
			Fat:      *n.Fat,
			Fiber:    *n.Fiber,
			Sugar:    *n.Sugar,
		},
	}, nil
}
