package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nutriplan/config"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGenerationLimiter_NoRedisIsNoop(t *testing.T) {
	limiter := NewGenerationLimiter(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})

	assert.IsType(t, noopLimiter{}, limiter)

	allowed, err := limiter.Allow(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewGenerationLimiter_WithRedis(t *testing.T) {
	limiter := NewGenerationLimiter(Params{
		Lc: fxtest.NewLifecycle(t),
		Config: &config.Config{
			Redis:           &config.RedisConfig{Addr: "127.0.0.1:6379"},
			GenerationLimit: &config.GenerationLimitConfig{Window: time.Minute, MaxRequests: 3},
		},
		Logger: newDiscardLogger(),
	})

	rl, ok := limiter.(*redisLimiter)
	require.True(t, ok)
	assert.Equal(t, time.Minute, rl.window)
	assert.EqualValues(t, 3, rl.maxRequests)
}

func TestNewRedisLimiter_Defaults(t *testing.T) {
	rl := NewRedisLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"}), 0, 0).(*redisLimiter)

	assert.Equal(t, defaultWindow, rl.window)
	assert.EqualValues(t, defaultMaxRequests, rl.maxRequests)
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewRedisLimiter(client, time.Minute, 1)

	allowed, err := limiter.Allow(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.True(t, allowed)
}

func TestGenerationKey(t *testing.T) {
	userID := uuid.MustParse("7d0b6f1e-3a57-4b0e-9a43-6a3f1f0b2c11")

	assert.Equal(t, "meal_plan_generation:7d0b6f1e-3a57-4b0e-9a43-6a3f1f0b2c11", generationKey(userID))
}

func newMiniredisLimiter(t *testing.T, window time.Duration, maxRequests int) (*miniredis.Miniredis, *redis.Client, service.GenerationLimiter) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client, NewRedisLimiter(client, window, maxRequests)
}

func TestRedisLimiter_Allow_Boundary(t *testing.T) {
	_, _, limiter := newMiniredisLimiter(t, time.Hour, 3)
	ctx := context.Background()
	userID := uuid.New()

	for i := 1; i <= 3; i++ {
		allowed, err := limiter.Allow(ctx, userID)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i)
	}

	allowed, err := limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisLimiter_Allow_WindowResets(t *testing.T) {
	mr, _, limiter := newMiniredisLimiter(t, time.Hour, 1)
	ctx := context.Background()
	userID := uuid.New()

	allowed, err := limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.False(t, allowed)

	// The window is fixed: refused requests do not push the expiry out.
	assert.Equal(t, time.Hour, mr.TTL(generationKey(userID)))

	mr.FastForward(time.Hour)

	allowed, err = limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_Allow_PerUserCounters(t *testing.T) {
	_, _, limiter := newMiniredisLimiter(t, time.Hour, 1)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	allowed, err := limiter.Allow(ctx, alice)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, alice)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, bob)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_Allow_CounterWithoutTTLGetsOne(t *testing.T) {
	mr, _, limiter := newMiniredisLimiter(t, time.Hour, 2)
	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, mr.Set(generationKey(userID), "5"))

	allowed, err := limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Hour, mr.TTL(generationKey(userID)))

	mr.FastForward(time.Hour)

	allowed, err = limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

// lostReplyHook lets the first transaction reach Redis but reports it as failed,
// as happens when the connection drops before EXEC's reply is read.
type lostReplyHook struct {
	failed bool
}

func (h *lostReplyHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *lostReplyHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return next
}

func (h *lostReplyHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err == nil && !h.failed {
			h.failed = true

			return errors.New("connection reset while reading EXEC reply")
		}

		return err
	}
}

func TestRedisLimiter_Allow_LostReplyStillExpires(t *testing.T) {
	mr, client, limiter := newMiniredisLimiter(t, time.Hour, 2)
	client.AddHook(&lostReplyHook{})
	ctx := context.Background()
	userID := uuid.New()

	allowed, err := limiter.Allow(ctx, userID)
	require.Error(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Positive(t, mr.TTL(generationKey(userID)))

	mr.FastForward(48 * time.Hour)

	allowed, err = limiter.Allow(ctx, userID)
	require.NoError(t, err)
	assert.True(t, allowed)
}
