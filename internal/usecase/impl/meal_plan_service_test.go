package impl

import (
	"context"
	"testing"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/domain/service"
	mockRepo "nutriplan/internal/mocks/repository"
	mockSvc "nutriplan/internal/mocks/service"
	mockUsecase "nutriplan/internal/mocks/usecase"
	"nutriplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mealPlanServiceFixtures struct {
	service       usecase.MealPlanUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	mealPlanRepo  *mockRepo.MockMealPlanRepository
	planGenerator *mockUsecase.MockPlanGenerator
	limiter       *mockSvc.MockGenerationLimiter
	publisher     *mockSvc.MockEventPublisher
	qrCodeService *mockSvc.MockQRCodeService
}

func createTestMealPlanService(t *testing.T) mealPlanServiceFixtures {
	fx := mealPlanServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		mealPlanRepo:  mockRepo.NewMockMealPlanRepository(t),
		planGenerator: mockUsecase.NewMockPlanGenerator(t),
		limiter:       mockSvc.NewMockGenerationLimiter(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		qrCodeService: mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewMealPlanService(MealPlanServiceParams{
		TxManager:     fx.txManager,
		UserRepo:      fx.userRepo,
		MealPlanRepo:  fx.mealPlanRepo,
		PlanGenerator: fx.planGenerator,
		Limiter:       fx.limiter,
		Publisher:     fx.publisher,
		QRCodeService: fx.qrCodeService,
		Logger:        newDiscardLogger(),
	})

	return fx
}

// expectTx runs the transaction callback against the given meal plan repository.
func (fx mealPlanServiceFixtures) expectTx(t *testing.T, mealPlanRepo *mockRepo.MockMealPlanRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().MealPlanRepo().Return(mealPlanRepo)

			return fn(mockFactory)
		})
}

func TestMealPlanService_GenerateMealPlan_Success(t *testing.T) {
	fx := createTestMealPlanService(t)
	user := newTestUser(true)
	planID := uuid.New()

	days := FallbackDays()
	days[0].Breakfast.DiningOut = true

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.limiter.EXPECT().Allow(mock.Anything, user.ID).Return(true, nil)
	fx.planGenerator.EXPECT().Generate(mock.Anything, user.Profile).Return(&usecase.GenerationResult{
		Days:   days,
		Source: entity.SourceGenerated,
	})

	txRepo := mockRepo.NewMockMealPlanRepository(t)
	txRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.MealPlan) bool {
			return p.UserID == user.ID && p.Source == entity.SourceGenerated && !p.Days[0].Breakfast.DiningOut
		})).
		Run(func(_ context.Context, p *entity.MealPlan) {
			p.ID = planID
			p.Version = 1
		}).
		Return(nil)
	fx.expectTx(t, txRepo)

	fx.publisher.EXPECT().
		PublishMealPlanEvent(mock.Anything, mock.MatchedBy(func(e *service.MealPlanEvent) bool {
			return e.Type == service.EventMealPlanGenerated && e.PlanID == planID.String() && e.Source == "generated"
		})).
		Return(nil)

	plan, err := fx.service.GenerateMealPlan(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, planID, plan.ID)
	assert.Len(t, plan.Days, entity.DaysPerPlan)
}

func TestMealPlanService_GenerateMealPlan_FallbackIsStored(t *testing.T) {
	fx := createTestMealPlanService(t)
	user := newTestUser(true)

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.limiter.EXPECT().Allow(mock.Anything, user.ID).Return(true, nil)
	fx.planGenerator.EXPECT().Generate(mock.Anything, user.Profile).Return(&usecase.GenerationResult{
		Days:   FallbackDays(),
		Source: entity.SourceFallback,
		Cause:  errors.New("reply is not valid JSON"),
	})

	txRepo := mockRepo.NewMockMealPlanRepository(t)
	txRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.MealPlan) bool { return p.Source == entity.SourceFallback })).
		Return(nil)
	fx.expectTx(t, txRepo)
	fx.publisher.EXPECT().PublishMealPlanEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	plan, err := fx.service.GenerateMealPlan(context.Background(), user.ID)

	require.NoError(t, err, "publish failures must not fail the request")
	assert.Equal(t, entity.SourceFallback, plan.Source)
}

func TestMealPlanService_GenerateMealPlan_ProfileRequired(t *testing.T) {
	fx := createTestMealPlanService(t)
	user := newTestUser(false)

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	plan, err := fx.service.GenerateMealPlan(context.Background(), user.ID)

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileRequired))
}

func TestMealPlanService_GenerateMealPlan_RateLimited(t *testing.T) {
	fx := createTestMealPlanService(t)
	user := newTestUser(true)

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.limiter.EXPECT().Allow(mock.Anything, user.ID).Return(false, nil)

	plan, err := fx.service.GenerateMealPlan(context.Background(), user.ID)

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domainerrors.ErrGenerationRateLimited))
}

func TestMealPlanService_GetLatestMealPlan(t *testing.T) {
	fx := createTestMealPlanService(t)
	userID := uuid.New()
	plan := newTestMealPlan(userID)

	fx.mealPlanRepo.EXPECT().FindLatestByUser(mock.Anything, userID).Return(plan, nil).Once()
	got, err := fx.service.GetLatestMealPlan(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	other := uuid.New()
	fx.mealPlanRepo.EXPECT().FindLatestByUser(mock.Anything, other).Return(nil, domainerrors.ErrNoMealPlanYet).Once()
	got, err = fx.service.GetLatestMealPlan(context.Background(), other)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNoMealPlanYet))
}

func TestMealPlanService_GetMealPlan_OtherUser(t *testing.T) {
	fx := createTestMealPlanService(t)
	owner := uuid.New()
	intruder := uuid.New()
	plan := newTestMealPlan(owner)

	fx.mealPlanRepo.EXPECT().FindByIDForUser(mock.Anything, plan.ID, intruder).Return(nil, domainerrors.ErrMealPlanNotFound)

	got, err := fx.service.GetMealPlan(context.Background(), intruder, plan.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
}

func TestMealPlanService_SetDiningOut(t *testing.T) {
	fx := createTestMealPlanService(t)
	userID := uuid.New()
	plan := newTestMealPlan(userID)
	version := int64(1)

	updated := newTestMealPlan(userID)
	updated.ID = plan.ID
	updated.Version = 2
	updated.Days[2].Dinner.DiningOut = true

	txRepo := mockRepo.NewMockMealPlanRepository(t)
	txRepo.EXPECT().SetMealDiningOut(mock.Anything, repository.SetDiningOutParams{
		PlanID:          plan.ID,
		UserID:          userID,
		Day:             3,
		MealType:        entity.MealDinner,
		DiningOut:       true,
		ExpectedVersion: &version,
	}).Return(int64(2), nil)
	txRepo.EXPECT().FindByIDForUser(mock.Anything, plan.ID, userID).Return(updated, nil)
	fx.expectTx(t, txRepo)

	fx.publisher.EXPECT().
		PublishMealPlanEvent(mock.Anything, mock.MatchedBy(func(e *service.MealPlanEvent) bool {
			return e.Type == service.EventMealPlanDiningStatusChange &&
				e.Day == 3 && e.MealType == "dinner" && *e.DiningOut && e.Version == 2
		})).
		Return(nil)

	got, err := fx.service.SetDiningOut(context.Background(), userID, &usecase.SetDiningOutInput{
		PlanID:    plan.ID,
		Day:       3,
		MealType:  entity.MealDinner,
		DiningOut: boolPtr(true),
		Version:   &version,
	})

	require.NoError(t, err)
	assert.True(t, got.Days[2].Dinner.DiningOut)
	assert.Equal(t, int64(2), got.Version)
}

func TestMealPlanService_SetDiningOut_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "plan missing", repoErr: domainerrors.ErrMealPlanNotFound, want: domainerrors.ErrMealPlanNotFound},
		{name: "day out of range", repoErr: domainerrors.ErrMealNotFound, want: domainerrors.ErrMealNotFound},
		{name: "stale version", repoErr: errors.Wrap(domainerrors.ErrMealPlanVersionConflict, "version 1"), want: domainerrors.ErrMealPlanVersionConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMealPlanService(t)
			txRepo := mockRepo.NewMockMealPlanRepository(t)
			txRepo.EXPECT().SetMealDiningOut(mock.Anything, mock.Anything).Return(int64(0), tt.repoErr)
			fx.expectTx(t, txRepo)

			got, err := fx.service.SetDiningOut(context.Background(), uuid.New(), &usecase.SetDiningOutInput{
				PlanID:    uuid.New(),
				Day:       8,
				MealType:  entity.MealLunch,
				DiningOut: boolPtr(true),
			})

			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestMealPlanService_SetDiningOut_InvalidInput(t *testing.T) {
	fx := createTestMealPlanService(t)

	got, err := fx.service.SetDiningOut(context.Background(), uuid.New(), &usecase.SetDiningOutInput{
		PlanID:   uuid.New(),
		Day:      1,
		MealType: "brunch",
	})

	assert.Nil(t, got)
	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "meal_type")
	assert.Contains(t, appErr.Details(), "dining_out")
}

func TestMealPlanService_GetGroceryList_ExcludesDiningOut(t *testing.T) {
	fx := createTestMealPlanService(t)
	userID := uuid.New()
	plan := newTestMealPlan(userID)

	fx.mealPlanRepo.EXPECT().FindByIDForUser(mock.Anything, plan.ID, userID).Return(plan, nil).Once()
	before, err := fx.service.GetGroceryList(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	require.Len(t, before.Ingredients, 7*3*2)
	assert.Equal(t, "day1-breakfast-a", before.Ingredients[0])
	assert.Equal(t, "day7-dinner-b", before.Ingredients[len(before.Ingredients)-1])

	flagged := newTestMealPlan(userID)
	flagged.ID = plan.ID
	flagged.Days[2].Dinner.DiningOut = true
	fx.mealPlanRepo.EXPECT().FindByIDForUser(mock.Anything, plan.ID, userID).Return(flagged, nil).Once()
	after, err := fx.service.GetGroceryList(context.Background(), userID, plan.ID)
	require.NoError(t, err)

	assert.Len(t, after.Ingredients, len(before.Ingredients)-len(flagged.Days[2].Dinner.Recipe.Ingredients))
	assert.NotContains(t, after.Ingredients, "day3-dinner-a")
	assert.Equal(t, plan.ID, after.PlanID)
}

func TestMealPlanService_GetGroceryListQR(t *testing.T) {
	fx := createTestMealPlanService(t)
	userID := uuid.New()
	plan := newTestMealPlan(userID)

	fx.mealPlanRepo.EXPECT().FindByIDForUser(mock.Anything, plan.ID, userID).Return(plan, nil)
	fx.qrCodeService.EXPECT().GenerateGroceryListQR(plan.ID).Return([]byte("png"), nil)

	png, err := fx.service.GetGroceryListQR(context.Background(), userID, plan.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestMealPlanService_GetGroceryListQR_NotOwned(t *testing.T) {
	fx := createTestMealPlanService(t)
	planID := uuid.New()
	userID := uuid.New()

	fx.mealPlanRepo.EXPECT().FindByIDForUser(mock.Anything, planID, userID).Return(nil, domainerrors.ErrMealPlanNotFound)

	png, err := fx.service.GetGroceryListQR(context.Background(), userID, planID)

	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
}
