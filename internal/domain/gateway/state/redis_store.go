package state

import (
	"context"
	"fmt"
	"time"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

// DefaultStateKey is the Redis key holding the dashboard state.
const DefaultStateKey = "dashboard::state"

type redisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a Store shared by every instance pointing at the same Redis.
// A zero ttl keeps the state until overwritten.
func NewRedisStore(client *redis.Client, key string, ttl time.Duration) Store {
	if key == "" {
		key = DefaultStateKey
	}
	return &redisStore{client: client, key: key, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context) (model.DashboardState, error) {
	var state model.DashboardState
	found, err := s.client.GetJSON(ctx, s.key, &state)
	if err != nil {
		return model.NewIdleState(), fmt.Errorf("failed to load dashboard state: %w", err)
	}
	if !found {
		return model.NewIdleState(), nil
	}
	return state, nil
}

func (s *redisStore) Save(ctx context.Context, state model.DashboardState) error {
	if err := s.client.SetJSON(ctx, s.key, state, s.ttl); err != nil {
		return fmt.Errorf("failed to save dashboard state: %w", err)
	}
	return nil
}

func (s *redisStore) Health(ctx context.Context) model.ComponentHealthStatus {
	check := s.client.HealthCheck(ctx)
	details := map[string]string{"type": "redis", "key": s.key}
	for k, v := range check.Details {
		details[k] = v
	}
	status := model.StatusDown
	if check.Healthy {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}
