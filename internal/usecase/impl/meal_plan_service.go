package impl

import (
	"context"
	"log/slog"

	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealPlanService implements the MealPlanUsecase interface.
type mealPlanService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	mealPlanRepo  repository.MealPlanRepository
	planGenerator usecase.PlanGenerator
	limiter       service.GenerationLimiter
	publisher     service.EventPublisher
	qrCodeService service.QRCodeService
	validate      *validator.Validate
	logger        *slog.Logger
}

// MealPlanServiceParams holds dependencies for MealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	MealPlanRepo  repository.MealPlanRepository
	PlanGenerator usecase.PlanGenerator
	Limiter       service.GenerationLimiter
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		mealPlanRepo:  params.MealPlanRepo,
		planGenerator: params.PlanGenerator,
		limiter:       params.Limiter,
		publisher:     params.Publisher,
		qrCodeService: params.QRCodeService,
		validate:      newInputValidator(),
		logger:        params.Logger,
	}
}

func (srv *mealPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateMealPlan builds a new plan from the user's current profile and stores it.
// Generation failures never surface: the plan is then the fallback schedule.
func (srv *mealPlanService) GenerateMealPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for meal plan generation")
	}
	if !user.HasProfile() {
		return nil, domainerrors.ErrProfileRequired
	}

	allowed, err := srv.limiter.Allow(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Generation limiter unavailable", slog.Any("userID", userID), slog.Any("error", err))
	}
	if !allowed {
		return nil, domainerrors.ErrGenerationRateLimited
	}

	srv.log(ctx).Info("Generating meal plan", slog.Any("userID", userID))
	result := srv.planGenerator.Generate(ctx, user.Profile)

	plan := &entity.MealPlan{
		UserID: userID,
		Source: result.Source,
		Days:   result.Days,
	}
	plan.ResetDiningOut()

	if !plan.HasValidShape() {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "generator returned an incomplete plan")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.MealPlanRepo().Create(ctx, plan)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store meal plan", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store meal plan")
	}

	srv.log(ctx).Info("Meal plan stored",
		slog.Any("userID", userID),
		slog.Any("planID", plan.ID),
		slog.String("source", string(plan.Source)),
	)

	srv.publish(ctx, &service.MealPlanEvent{
		Type:    service.EventMealPlanGenerated,
		PlanID:  plan.ID.String(),
		UserID:  userID.String(),
		Source:  string(plan.Source),
		Version: plan.Version,
	})

	return plan, nil
}

// GetLatestMealPlan returns the user's most recently created plan.
func (srv *mealPlanService) GetLatestMealPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := srv.mealPlanRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoMealPlanYet) {
			return nil, domainerrors.ErrNoMealPlanYet
		}

		return nil, errors.Wrap(err, "failed to find latest meal plan")
	}

	return plan, nil
}

// GetMealPlan returns one plan owned by the user. Plans of other users look missing.
func (srv *mealPlanService) GetMealPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := srv.mealPlanRepo.FindByIDForUser(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMealPlanNotFound) {
			return nil, domainerrors.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan")
	}

	return plan, nil
}

// SetDiningOut changes one meal's flag and returns the plan as stored afterwards.
func (srv *mealPlanService) SetDiningOut(ctx context.Context, userID uuid.UUID, input *usecase.SetDiningOutInput) (*entity.MealPlan, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(describeValidationError(err))
	}

	var updated *entity.MealPlan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlanRepo := repoFactory.MealPlanRepo()

		if _, err := mealPlanRepo.SetMealDiningOut(ctx, repository.SetDiningOutParams{
			PlanID:          input.PlanID,
			UserID:          userID,
			Day:             input.Day,
			MealType:        input.MealType,
			DiningOut:       *input.DiningOut,
			ExpectedVersion: input.Version,
		}); err != nil {
			return err
		}

		plan, err := mealPlanRepo.FindByIDForUser(ctx, input.PlanID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload meal plan")
		}
		updated = plan

		return nil
	})
	if err != nil {
		for _, known := range []error{
			domainerrors.ErrMealPlanNotFound,
			domainerrors.ErrMealNotFound,
			domainerrors.ErrMealPlanVersionConflict,
		} {
			if errors.Is(err, known) {
				srv.log(ctx).Warn("Dining status update rejected", slog.Any("planID", input.PlanID), slog.Any("error", err))

				return nil, known
			}
		}
		srv.log(ctx).Error("Failed to update dining status", slog.Any("planID", input.PlanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update dining status")
	}

	srv.publish(ctx, &service.MealPlanEvent{
		Type:      service.EventMealPlanDiningStatusChange,
		PlanID:    updated.ID.String(),
		UserID:    userID.String(),
		Day:       input.Day,
		MealType:  input.MealType.String(),
		DiningOut: input.DiningOut,
		Version:   updated.Version,
	})

	return updated, nil
}

// GetGroceryList aggregates the ingredients of every meal not eaten out.
func (srv *mealPlanService) GetGroceryList(ctx context.Context, userID, planID uuid.UUID) (*usecase.GroceryList, error) {
	plan, err := srv.GetMealPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	return &usecase.GroceryList{
		PlanID:      plan.ID,
		Ingredients: plan.GroceryIngredients(),
	}, nil
}

// GetGroceryListQR renders a QR code for a plan the user owns.
func (srv *mealPlanService) GetGroceryListQR(ctx context.Context, userID, planID uuid.UUID) ([]byte, error) {
	plan, err := srv.GetMealPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateGroceryListQR(plan.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate grocery list QR code")
	}

	return png, nil
}

// publish sends an event; failures are logged and never reach the caller.
func (srv *mealPlanService) publish(ctx context.Context, event *service.MealPlanEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishMealPlanEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish meal plan event",
			slog.String("type", event.Type),
			slog.String("planID", event.PlanID),
			slog.Any("error", err),
		)
	}
}
