package dashboard

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// Mount fetches the theme's default location if the dashboard has never loaded anything
	Mount(ctx context.Context) (model.DashboardState, error)

	// Search trims query and, when non-empty, moves the dashboard through Loading to Loaded or Failed
	Search(ctx context.Context, query string) (model.DashboardState, error)

	// State returns the state currently on display
	State(ctx context.Context) (model.DashboardState, error)

	// Forecast fetches a bundle without touching the dashboard state
	Forecast(ctx context.Context, query string, horizonDays int) (*entity.ForecastBundle, error)

	// Theme returns the configured visual theme
	Theme() model.Theme
}
