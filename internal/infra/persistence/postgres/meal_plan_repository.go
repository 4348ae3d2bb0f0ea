package postgres

import (
	"context"
	"slices"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/errors"
	"nutriplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mealPlanRepository implements repository.MealPlanRepository. Meals live in
// their own rows so a dining-status change touches a single row.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// Create inserts the plan and its meal rows. Call it inside a transaction.
func (repo *mealPlanRepository) Create(ctx context.Context, plan *entity.MealPlan) error {
	if plan.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate meal plan id")
		}
		plan.ID = id
	}
	if plan.Version == 0 {
		plan.Version = 1
	}

	planM, err := fromMealPlanDomain(plan)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "meal plan has a duplicate slot: "+violatedConstraint(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal plan")
	}

	plan.CreatedAt = planM.CreatedAt

	return nil
}

// FindLatestByUser returns the newest plan. Plans created in the same instant
// are ordered by their time-ordered UUIDv7 ID.
func (repo *mealPlanRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error) {
	var planM model.MealPlanModel
	if err := repo.db.WithContext(ctx).
		Preload("Meals").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNoMealPlanYet)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest meal plan")
	}

	return toMealPlanDomain(&planM), nil
}

// FindByIDForUser returns the plan only if userID owns it.
func (repo *mealPlanRepository) FindByIDForUser(ctx context.Context, planID, userID uuid.UUID) (*entity.MealPlan, error) {
	var planM model.MealPlanModel
	if err := repo.db.WithContext(ctx).
		Preload("Meals").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMealPlanNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find meal plan")
	}

	return toMealPlanDomain(&planM), nil
}

// SetMealDiningOut locks the plan row, checks the optional expected version,
// flips one meal's flag and bumps the version. Call it inside a transaction.
func (repo *mealPlanRepository) SetMealDiningOut(ctx context.Context, params repository.SetDiningOutParams) (int64, error) {
	db := repo.db.WithContext(ctx)

	var planM model.MealPlanModel
	if err := db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "version").
		Where("id = ? AND user_id = ?", params.PlanID, params.UserID).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.WithStack(domainerrors.ErrMealPlanNotFound)
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to lock meal plan")
	}

	if params.ExpectedVersion != nil && *params.ExpectedVersion != planM.Version {
		return 0, errors.WithStack(domainerrors.ErrMealPlanVersionConflict)
	}

	result := db.Model(&model.MealPlanMealModel{}).
		Where("meal_plan_id = ? AND day = ? AND meal_type = ?", params.PlanID, params.Day, params.MealType.String()).
		Update("dining_out", params.DiningOut)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal")
	}
	if result.RowsAffected == 0 {
		return 0, errors.WithStack(domainerrors.ErrMealNotFound)
	}

	newVersion := planM.Version + 1
	if err := db.Model(&model.MealPlanModel{}).
		Where("id = ?", params.PlanID).
		Update("version", newVersion).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to bump meal plan version")
	}

	return newVersion, nil
}

func fromMealPlanDomain(plan *entity.MealPlan) (*model.MealPlanModel, error) {
	planM := &model.MealPlanModel{
		ID:        plan.ID,
		UserID:    plan.UserID,
		Source:    string(plan.Source),
		Version:   plan.Version,
		CreatedAt: plan.CreatedAt,
		Meals:     make([]model.MealPlanMealModel, 0, len(plan.Days)*len(entity.MealTypes)),
	}

	for i := range plan.Days {
		day := &plan.Days[i]
		for _, mealType := range entity.MealTypes {
			id, err := uuid.NewV7()
			if err != nil {
				return nil, errors.Wrap(err, "failed to generate meal id")
			}
			meal := day.Meal(mealType)
			planM.Meals = append(planM.Meals, model.MealPlanMealModel{
				ID:           id,
				MealPlanID:   plan.ID,
				Day:          day.Number,
				MealType:     mealType.String(),
				Name:         meal.Name,
				Ingredients:  meal.Recipe.Ingredients,
				Instructions: meal.Recipe.Instructions,
				Calories:     meal.Nutrition.Calories,
				Protein:      meal.Nutrition.Protein,
				Carbs:        meal.Nutrition.Carbs,
				Fat:          meal.Nutrition.Fat,
				Fiber:        meal.Nutrition.Fiber,
				Sugar:        meal.Nutrition.Sugar,
				DiningOut:    meal.DiningOut,
			})
		}
	}

	return planM, nil
}

func toMealPlanDomain(planM *model.MealPlanModel) *entity.MealPlan {
	plan := &entity.MealPlan{
		ID:        planM.ID,
		UserID:    planM.UserID,
		Source:    entity.GenerationSource(planM.Source),
		Version:   planM.Version,
		CreatedAt: planM.CreatedAt,
	}

	byDay := make(map[int]*entity.Day, entity.DaysPerPlan)
	for i := range planM.Meals {
		mealM := &planM.Meals[i]
		day, ok := byDay[mealM.Day]
		if !ok {
			day = &entity.Day{Number: mealM.Day}
			byDay[mealM.Day] = day
		}

		slot := day.Meal(entity.MealType(mealM.MealType))
		if slot == nil {
			continue
		}
		*slot = entity.Meal{
			Name: mealM.Name,
			Recipe: entity.Recipe{
				Ingredients:  mealM.Ingredients,
				Instructions: mealM.Instructions,
			},
			Nutrition: entity.Nutrition{
				Calories: mealM.Calories,
				Protein:  mealM.Protein,
				Carbs:    mealM.Carbs,
				Fat:      mealM.Fat,
				Fiber:    mealM.Fiber,
				Sugar:    mealM.Sugar,
			},
			DiningOut: mealM.DiningOut,
		}
	}

	plan.Days = make([]entity.Day, 0, len(byDay))
	for _, day := range byDay {
		plan.Days = append(plan.Days, *day)
	}
	slices.SortFunc(plan.Days, func(a, b entity.Day) int {
		return a.Number - b.Number
	})

	return plan
}
