package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement GORM renders, with bound values inlined.
type sqlRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...any) {}
func (r *sqlRecorder) Warn(context.Context, string, ...any) {}
func (r *sqlRecorder) Error(context.Context, string, ...any) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) first(t *testing.T) string {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.statements)

	return r.statements[0]
}

func (r *sqlRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.statements...)
}

// newDryRunRepository renders SQL with the Postgres dialect without connecting.
func newDryRunRepository(t *testing.T) (repository.MealPlanRepository, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=127.0.0.1 port=5432 user=nutriplan dbname=nutriplan sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	require.NoError(t, err)

	return NewMealPlanRepository(db), recorder
}

func TestMealPlanRepository_FindByIDForUser_ScopesToOwner(t *testing.T) {
	repo, recorder := newDryRunRepository(t)
	planID, userID := uuid.New(), uuid.New()

	_, err := repo.FindByIDForUser(context.Background(), planID, userID)
	require.NoError(t, err)

	sql := recorder.first(t)
	assert.Contains(t, sql, `FROM "meal_plans"`)
	assert.Contains(t, sql, "id = '"+planID.String()+"'")
	assert.Contains(t, sql, "user_id = '"+userID.String()+"'")
}

func TestMealPlanRepository_FindLatestByUser_OrdersNewestFirst(t *testing.T) {
	repo, recorder := newDryRunRepository(t)
	userID := uuid.New()

	_, err := repo.FindLatestByUser(context.Background(), userID)
	require.NoError(t, err)

	sql := recorder.first(t)
	assert.Contains(t, sql, "user_id = '"+userID.String()+"'")
	assert.Regexp(t, `ORDER BY created_at DESC,\s*id DESC`, sql)
	assert.Contains(t, sql, "LIMIT 1")
}

func TestMealPlanRepository_SetMealDiningOut_LocksOwnedPlanThenUpdatesSlot(t *testing.T) {
	repo, recorder := newDryRunRepository(t)
	planID, userID := uuid.New(), uuid.New()

	// A dry run affects no rows, which is the unknown-slot path.
	_, err := repo.SetMealDiningOut(context.Background(), repository.SetDiningOutParams{
		PlanID:    planID,
		UserID:    userID,
		Day:       3,
		MealType:  entity.MealDinner,
		DiningOut: true,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))

	statements := recorder.all()
	require.Len(t, statements, 2)

	lock := statements[0]
	assert.Contains(t, lock, "FOR UPDATE")
	assert.Contains(t, lock, "id = '"+planID.String()+"'")
	assert.Contains(t, lock, "user_id = '"+userID.String()+"'")

	update := statements[1]
	assert.Contains(t, update, `UPDATE "meal_plan_meals" SET "dining_out"=true`)
	assert.Contains(t, update, "meal_plan_id = '"+planID.String()+"'")
	assert.Contains(t, update, "day = 3")
	assert.Contains(t, update, "meal_type = 'dinner'")
}

func TestMealPlanRepository_SetMealDiningOut_VersionConflictSkipsUpdate(t *testing.T) {
	repo, recorder := newDryRunRepository(t)
	expected := int64(5)

	_, err := repo.SetMealDiningOut(context.Background(), repository.SetDiningOutParams{
		PlanID:          uuid.New(),
		UserID:          uuid.New(),
		Day:             1,
		MealType:        entity.MealBreakfast,
		DiningOut:       true,
		ExpectedVersion: &expected,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanVersionConflict))
	assert.Len(t, recorder.all(), 1)
}
