package postgres

import (
	"context"
	"log/slog"

	"nutriplan/config"
	"nutriplan/internal/domain/lifecycle"
	"nutriplan/internal/errors"
	"nutriplan/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool holding users and meal plans. The schema is
// owned by cmd/migrate; start-up only checks that it has been applied.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			checkSchema(ctx, db, params.Logger)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stats := sqlDB.Stats()
			params.Logger.Info("Closing PostgreSQL pool",
				slog.Int("openConns", stats.OpenConnections),
				slog.Int64("waitCount", stats.WaitCount),
				slog.Duration("waitDuration", stats.WaitDuration),
			)

			return sqlDB.Close()
		},
	})

	return db, nil
}

// checkSchema warns about tables that cmd/migrate has not created yet.
func checkSchema(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	migrator := db.WithContext(ctx).Migrator()
	for _, table := range []schema.Tabler{model.UserModel{}, model.MealPlanModel{}, model.MealPlanMealModel{}} {
		if !migrator.HasTable(table.TableName()) {
			logger.Warn("PostgreSQL table missing, run cmd/migrate up",
				slog.String("table", table.TableName()),
			)
		}
	}
}
