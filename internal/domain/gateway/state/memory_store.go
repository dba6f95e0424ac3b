package state

import (
	"context"
	"sync"

	"weather-dashboard/internal/domain/model"
)

type memoryStore struct {
	mu    sync.RWMutex
	state model.DashboardState
}

// NewMemoryStore creates a process-local Store.
func NewMemoryStore() Store {
	return &memoryStore{state: model.NewIdleState()}
}

func (s *memoryStore) Load(_ context.Context) (model.DashboardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, nil
}

func (s *memoryStore) Save(_ context.Context, state model.DashboardState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return nil
}

func (s *memoryStore) Health(_ context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"type": "memory"},
	}
}
