package state

import (
	"context"

	"weather-dashboard/internal/domain/model"
)

// Store holds the single dashboard state slot. Save overwrites unconditionally.
type Store interface {
	// Load returns the current state, or an idle state when nothing was saved yet
	Load(ctx context.Context) (model.DashboardState, error)

	// Save replaces the current state
	Save(ctx context.Context, state model.DashboardState) error

	// Health reports whether the store is reachable
	Health(ctx context.Context) model.ComponentHealthStatus
}
