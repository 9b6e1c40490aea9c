package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no plan is cached for the user.
var ErrCacheMiss = errors.New("meal plan not cached")

// Cache stores one generated plan per user. Implementations must return
// ErrCacheMiss from Get when nothing is stored.
type Cache interface {
	Get(ctx context.Context, userID uuid.UUID) (*Plan, error)
	Put(ctx context.Context, userID uuid.UUID, plan *Plan) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// Stale reports whether a cached plan no longer matches the profile's
// timeframe and must be regenerated.
func Stale(plan *Plan, timeframeDays int) bool {
	if plan == nil || len(plan.Days) == 0 {
		return true
	}
	if timeframeDays <= 0 {
		timeframeDays = 7
	}
	return len(plan.Days) != timeframeDays
}

// DefaultCacheTTL bounds how long an untouched plan survives in Redis.
// Regeneration and profile updates invalidate explicitly before then.
const DefaultCacheTTL = 30 * 24 * time.Hour

// RedisCache keeps plans as JSON values under mealplan:<userID>.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, ttl: DefaultCacheTTL}
}

func planKey(userID uuid.UUID) string {
	return fmt.Sprintf("mealplan:%s", userID)
}

func (c *RedisCache) Get(ctx context.Context, userID uuid.UUID) (*Plan, error) {
	data, err := c.client.Get(ctx, planKey(userID)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plan from cache: %w", err)
	}

	var plan Plan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode cached meal plan: %w", err)
	}
	return &plan, nil
}

func (c *RedisCache) Put(ctx context.Context, userID uuid.UUID, plan *Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode meal plan: %w", err)
	}
	if err := c.client.Set(ctx, planKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache meal plan: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, planKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate meal plan cache: %w", err)
	}
	return nil
}
