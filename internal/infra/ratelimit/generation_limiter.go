// Package ratelimit limits how often a user may generate a meal plan.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nutriplan/config"
	"nutriplan/internal/domain/lifecycle"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultWindow      = time.Hour
	defaultMaxRequests = 10
)

// noopLimiter allows everything; used when Redis or the limit is not configured.
type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

// redisLimiter is a fixed-window counter per user.
type redisLimiter struct {
	client      *redis.Client
	window      time.Duration
	maxRequests int64
}

// Params holds dependencies for the generation limiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewGenerationLimiter returns a Redis-backed limiter when Redis is configured,
// otherwise a limiter that allows every request.
func NewGenerationLimiter(params Params) service.GenerationLimiter {
	cfg := params.Config
	if cfg.Redis == nil || cfg.Redis.Addr == "" || cfg.GenerationLimit == nil {
		params.Logger.Info("Redis not configured, meal plan generation is not rate limited")

		return noopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// the limiter fails open, so an unreachable Redis only warrants a warning
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, generation limit will fail open", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisLimiter(client, cfg.GenerationLimit.Window, cfg.GenerationLimit.MaxRequests)
}

// NewRedisLimiter builds a limiter on an existing client.
func NewRedisLimiter(client *redis.Client, window time.Duration, maxRequests int) service.GenerationLimiter {
	if window <= 0 {
		window = defaultWindow
	}
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}

	return &redisLimiter{
		client:      client,
		window:      window,
		maxRequests: int64(maxRequests),
	}
}

func generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("meal_plan_generation:%s", userID.String())
}

// Allow counts the request in the user's current window. INCR and EXPIRE NX
// run in one MULTI/EXEC, so a counter never outlives its window even when the
// reply is lost. On Redis errors it returns true with the error so the caller
// can log it and proceed.
func (l *redisLimiter) Allow(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := generationKey(userID)

	var count *redis.IntCmd
	if _, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)

		return nil
	}); err != nil {
		return true, errors.Wrap(err, "failed to count generation request")
	}

	return count.Val() <= l.maxRequests, nil
}
