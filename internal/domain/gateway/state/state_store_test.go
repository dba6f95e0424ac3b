package state

import (
	"context"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

func newRedisStore(t *testing.T) (*miniredis.Miniredis, Store) {
	t.Helper()
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}
	client, err := redis.NewClient(redis.DefaultConfig().WithHost(server.Host()).WithPort(port))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return server, NewRedisStore(client, "", 0)
}

func loadedState() model.DashboardState {
	now := time.Date(2025, 7, 31, 9, 30, 0, 0, time.UTC)
	bundle := &entity.ForecastBundle{
		Location: entity.Location{Name: "Shahpur", Country: "India"},
		Forecast: entity.Forecast{ForecastDay: []entity.DayForecast{{Date: "2025-07-31"}}},
	}
	return model.NewIdleState().StartLoading("Shahpur", "req-1", now).Succeed(bundle, now)
}

func TestStores(t *testing.T) {
	_, redisStore := newRedisStore(t)
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			initial, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !initial.IsIdle() {
				t.Fatalf("expected idle initial state, got %s", initial.Status)
			}

			want := loadedState()
			if err := store.Save(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(want, got) {
				t.Fatalf("state mismatch:\nwant %+v\ngot  %+v", want, got)
			}

			if health := store.Health(ctx); health.Status != model.StatusUp {
				t.Fatalf("expected UP, got %s", health.Status)
			}
		})
	}
}

func TestRedisStoreReportsOutage(t *testing.T) {
	server, store := newRedisStore(t)
	server.Close()

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected load to fail when redis is down")
	}
	health := store.Health(context.Background())
	if health.Status != model.StatusDown {
		t.Fatalf("expected DOWN, got %s", health.Status)
	}
	if health.Details["type"] != "redis" || health.Details["error"] == "" {
		t.Fatalf("expected redis details with the ping error, got %+v", health.Details)
	}
}
