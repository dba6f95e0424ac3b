package health

import (
	"context"
	"testing"

	"weather-dashboard/internal/domain/gateway/state"
	"weather-dashboard/internal/domain/model"
)

type stubStore struct {
	state.Store
	status model.HealthStatus
}

func (s stubStore) Health(ctx context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status, Details: map[string]string{"type": "stub"}}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name  string
		store state.Store
		want  model.HealthStatus
	}{
		{"memory store is always up", state.NewMemoryStore(), model.StatusUp},
		{"store down", stubStore{status: model.StatusDown}, model.StatusDown},
		{"store unknown", stubStore{status: model.StatusUnknown}, model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := NewHealthUseCase(tt.store).CheckHealth(context.Background())
			if response.Status != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, response.Status)
			}
		})
	}
}
