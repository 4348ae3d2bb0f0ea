// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/errors"
	"nutriplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// usernameConstraint is the UNIQUE constraint Postgres generates for users.username.
const usernameConstraint = "users_username_key"

// userRepository implements repository.UserRepository with plain GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a user by exact username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user. The ID is assigned here when the caller left it empty.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if name := violatedConstraint(err); name == "" || name == usernameConstraint {
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			}
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile overwrites the profile document.
func (repo *userRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("profile", datatypes.NewJSONType(fromProfileDomain(profile)))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID,
		Username:     userM.Username,
		PasswordHash: userM.PasswordHash,
		Profile:      toProfileDomain(userM.Profile.Data()),
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Profile:      datatypes.NewJSONType(fromProfileDomain(user.Profile)),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toProfileDomain(doc *model.ProfileDocument) *entity.Profile {
	if doc == nil {
		return nil
	}

	return &entity.Profile{
		Gender:              doc.Gender,
		Age:                 doc.Age,
		Weight:              doc.Weight,
		Height:              doc.Height,
		ActivityLevel:       entity.ActivityLevel(doc.ActivityLevel),
		FitnessGoal:         doc.FitnessGoal,
		CalorieTarget:       doc.CalorieTarget,
		ProteinTarget:       doc.ProteinTarget,
		FiberTarget:         doc.FiberTarget,
		DietaryRestrictions: doc.DietaryRestrictions,
		Allergies:           doc.Allergies,
	}
}

func fromProfileDomain(profile *entity.Profile) *model.ProfileDocument {
	if profile == nil {
		return nil
	}

	return &model.ProfileDocument{
		Gender:              profile.Gender,
		Age:                 profile.Age,
		Weight:              profile.Weight,
		Height:              profile.Height,
		ActivityLevel:       profile.ActivityLevel.String(),
		FitnessGoal:         profile.FitnessGoal,
		CalorieTarget:       profile.CalorieTarget,
		ProteinTarget:       profile.ProteinTarget,
		FiberTarget:         profile.FiberTarget,
		DietaryRestrictions: profile.DietaryRestrictions,
		Allergies:           profile.Allergies,
	}
}
