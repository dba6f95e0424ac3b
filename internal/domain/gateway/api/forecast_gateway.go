package api

import (
	"context"
	"errors"

	"weather-dashboard/internal/domain/entity"
)

// DefaultHorizonDays is the number of forecast days requested when none is given.
const DefaultHorizonDays = 7

// ErrEmptyQuery is returned when FetchForecast is called without a location.
// Callers trim user input and skip empty searches before reaching the gateway.
var ErrEmptyQuery = errors.New("query is required")

// ForecastGateway defines the weather provider calls used by the dashboard
type ForecastGateway interface {
	// FetchForecast issues exactly one forecast request for query.
	// horizonDays <= 0 requests DefaultHorizonDays.
	// Failures are *model.ProviderError or *model.NetworkError; nothing is retried or cached.
	FetchForecast(ctx context.Context, query string, horizonDays int) (*entity.ForecastBundle, error)
}
