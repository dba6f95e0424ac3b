package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/state"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// DefaultLoadingTimeout is used when no loading timeout is configured.
const DefaultLoadingTimeout = 60 * time.Second

type dashboardUseCase struct {
	theme          model.Theme
	horizonDays    int
	loadingTimeout time.Duration
	gateway        api.ForecastGateway
	stateStore     state.Store
	now            func() time.Time
	newRequestID   func() string
}

// NewDashboardUseCase builds the dashboard. A state left Loading for longer than
// loadingTimeout belongs to a fetch that will never finish.
func NewDashboardUseCase(theme model.Theme, horizonDays int, loadingTimeout time.Duration, gateway api.ForecastGateway, stateStore state.Store) UseCase {
	if loadingTimeout <= 0 {
		loadingTimeout = DefaultLoadingTimeout
	}
	return &dashboardUseCase{
		theme:          theme,
		horizonDays:    horizonDays,
		loadingTimeout: loadingTimeout,
		gateway:        gateway,
		stateStore:     stateStore,
		now:            time.Now,
		newRequestID:   func() string { return uuid.New().String() },
	}
}

// Mount fetches the default location on the first view, or when a previous fetch was abandoned
func (uc *dashboardUseCase) Mount(ctx context.Context) (model.DashboardState, error) {
	current, err := uc.stateStore.Load(ctx)
	if err != nil {
		return current, err
	}

	switch {
	case current.IsIdle():
		log.Info(msg.GetMessage("dashboard.mount", uc.theme.DefaultLocation), zap.String("theme", uc.theme.Name))
	case current.IsLoading() && uc.now().Sub(current.UpdatedAt) > uc.loadingTimeout:
		log.Warn(msg.GetMessage("dashboard.loading-stale", current.Query, current.UpdatedAt.Format(time.RFC3339)),
			zap.String("request_id", current.RequestID))
	default:
		return current, nil
	}

	return uc.Search(ctx, uc.theme.DefaultLocation)
}

// Search runs one fetch and stores its outcome. Searches are never cancelled or
// deduplicated: whichever fetch finishes last owns the slot.
func (uc *dashboardUseCase) Search(ctx context.Context, query string) (model.DashboardState, error) {
	// A search outlives the HTTP request that started it.
	ctx = context.WithoutCancel(ctx)

	current, err := uc.stateStore.Load(ctx)
	if err != nil {
		return current, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		log.Debug(msg.GetMessage("dashboard.search-ignored"))
		return current, nil
	}

	requestID := uc.newRequestID()
	loading := current.StartLoading(query, requestID, uc.now())
	if err := uc.stateStore.Save(ctx, loading); err != nil {
		log.Error(msg.GetMessage("dashboard.state-save-failed", requestID), zap.Error(err))
		return loading, err
	}

	log.Info(msg.GetMessage("dashboard.search-start", query),
		zap.String("request_id", requestID),
		zap.Int("horizon_days", uc.horizonDays))

	bundle, fetchErr := uc.gateway.FetchForecast(ctx, query, uc.horizonDays)

	var next model.DashboardState
	if fetchErr != nil {
		next = loading.Fail(fetchErr, uc.now())
		log.Warn(msg.GetMessage("dashboard.search-failed", query, fetchErr),
			zap.String("request_id", requestID),
			zap.String("kind", string(model.ErrorKindOf(fetchErr))))
	} else {
		next = loading.Succeed(bundle, uc.now())
		log.Info(msg.GetMessage("dashboard.search-success", query, bundle.Location.Name, len(bundle.Days())),
			zap.String("request_id", requestID))
		if err := bundle.Validate(); err != nil {
			log.Warn(msg.GetMessage("dashboard.bundle-incomplete", bundle.Location.Name),
				zap.String("request_id", requestID),
				zap.Error(err))
		}
	}

	if err := uc.stateStore.Save(ctx, next); err != nil {
		log.Error(msg.GetMessage("dashboard.state-save-failed", requestID), zap.Error(err))
		return next, err
	}
	return next, nil
}

func (uc *dashboardUseCase) State(ctx context.Context) (model.DashboardState, error) {
	return uc.stateStore.Load(ctx)
}

// Forecast is a one-shot fetch for API clients
func (uc *dashboardUseCase) Forecast(ctx context.Context, query string, horizonDays int) (*entity.ForecastBundle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, api.ErrEmptyQuery
	}
	if horizonDays <= 0 {
		horizonDays = uc.horizonDays
	}

	bundle, err := uc.gateway.FetchForecast(ctx, query, horizonDays)
	if err != nil {
		log.Warn(msg.GetMessage("dashboard.forecast-failed", query, err),
			zap.String("kind", string(model.ErrorKindOf(err))))
		return nil, err
	}
	return bundle, nil
}

func (uc *dashboardUseCase) Theme() model.Theme {
	return uc.theme
}
