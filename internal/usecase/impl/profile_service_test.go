package impl

import (
	"context"
	"testing"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	mockRepo "nutriplan/internal/mocks/repository"
	"nutriplan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func validProfileInput() *usecase.ProfileInput {
	return &usecase.ProfileInput{
		Gender:        "male",
		Age:           40,
		Weight:        82,
		Height:        181.5,
		ActivityLevel: "very_active",
		FitnessGoal:   "muscle_build",
		ProteinTarget: intPtr(160),
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	user := newTestUser(true)

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Profile, got.Profile)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)
	user := newTestUser(false)

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, domainerrors.ErrUserNotFound)

	got, err := fx.service.GetProfile(context.Background(), user.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_ReplacesWholeProfile(t *testing.T) {
	fx := createTestProfileService(t)
	user := newTestUser(true)
	ctx := context.Background()
	input := validProfileInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				UpdateProfile(ctx, user.ID, mock.MatchedBy(func(p *entity.Profile) bool {
					// Fields missing from the input must not survive from the old profile.
					return p.CalorieTarget == nil &&
						*p.ProteinTarget == 160 &&
						p.ActivityLevel == entity.ActivityVeryActive &&
						len(p.Allergies) == 0 && p.Allergies != nil
				})).
				Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.UpdateProfile(ctx, user.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "muscle_build", profile.FitnessGoal)
	assert.Equal(t, []string{}, profile.DietaryRestrictions)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.ProfileInput)
		field  string
	}{
		{name: "non-positive age", mutate: func(in *usecase.ProfileInput) { in.Age = 0 }, field: "age"},
		{name: "negative weight", mutate: func(in *usecase.ProfileInput) { in.Weight = -1 }, field: "weight"},
		{name: "unknown activity level", mutate: func(in *usecase.ProfileInput) { in.ActivityLevel = "couch" }, field: "activity_level"},
		{name: "zero calorie target", mutate: func(in *usecase.ProfileInput) { in.CalorieTarget = intPtr(0) }, field: "calorie_target"},
		{name: "missing goal", mutate: func(in *usecase.ProfileInput) { in.FitnessGoal = "" }, field: "fitness_goal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			input := validProfileInput()
			tt.mutate(input)

			profile, err := fx.service.UpdateProfile(context.Background(), newTestUser(false).ID, input)

			assert.Nil(t, profile)
			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}
