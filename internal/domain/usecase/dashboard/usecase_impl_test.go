package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/state"
	"weather-dashboard/internal/domain/model"
)

type fetchFunc func(ctx context.Context, query string, horizonDays int) (*entity.ForecastBundle, error)

type fakeGateway struct {
	mu      sync.Mutex
	queries []string
	days    []int
	fetch   fetchFunc
}

func (g *fakeGateway) FetchForecast(ctx context.Context, query string, horizonDays int) (*entity.ForecastBundle, error) {
	g.mu.Lock()
	g.queries = append(g.queries, query)
	g.days = append(g.days, horizonDays)
	g.mu.Unlock()
	return g.fetch(ctx, query, horizonDays)
}

func (g *fakeGateway) calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.queries...)
}

func bundleFor(name string) *entity.ForecastBundle {
	return &entity.ForecastBundle{
		Location: entity.Location{Name: name},
		Forecast: entity.Forecast{ForecastDay: []entity.DayForecast{{Date: "2025-07-31"}}},
	}
}

func succeed(ctx context.Context, query string, _ int) (*entity.ForecastBundle, error) {
	return bundleFor(query), nil
}

func newUseCase(gateway api.ForecastGateway, store state.Store) UseCase {
	return NewDashboardUseCase(model.HeroTheme(), api.DefaultHorizonDays, time.Minute, gateway, store)
}

func TestMountLoadsDefaultLocationOnce(t *testing.T) {
	gateway := &fakeGateway{fetch: succeed}
	uc := newUseCase(gateway, state.NewMemoryStore())

	first, err := uc.Mount(context.Background())
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if first.Status != model.DashboardLoaded || first.Bundle.Location.Name != "Shahpur" {
		t.Fatalf("unexpected state after mount %+v", first)
	}

	if _, err := uc.Mount(context.Background()); err != nil {
		t.Fatalf("second mount: %v", err)
	}
	if calls := gateway.calls(); len(calls) != 1 || calls[0] != "Shahpur" {
		t.Fatalf("expected a single fetch of the default location, got %v", calls)
	}
	if gateway.days[0] != api.DefaultHorizonDays {
		t.Fatalf("expected horizon %d, got %d", api.DefaultHorizonDays, gateway.days[0])
	}
}

func TestMountReplacesAbandonedLoadingState(t *testing.T) {
	now := time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		loadingAge  time.Duration
		wantFetches int
		wantStatus  model.DashboardStatus
	}{
		{"fetch still in flight", 30 * time.Second, 0, model.DashboardLoading},
		{"fetch abandoned", 5 * time.Minute, 1, model.DashboardLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := state.NewMemoryStore()
			stuck := model.NewIdleState().StartLoading("Paris", "req-dead", now.Add(-tt.loadingAge))
			if err := store.Save(context.Background(), stuck); err != nil {
				t.Fatalf("save: %v", err)
			}

			gateway := &fakeGateway{fetch: succeed}
			uc := newUseCase(gateway, store)
			uc.(*dashboardUseCase).now = func() time.Time { return now }

			got, err := uc.Mount(context.Background())
			if err != nil {
				t.Fatalf("mount: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("expected %s, got %s", tt.wantStatus, got.Status)
			}
			calls := gateway.calls()
			if len(calls) != tt.wantFetches {
				t.Fatalf("expected %d fetches, got %v", tt.wantFetches, calls)
			}
			if tt.wantFetches == 1 && calls[0] != "Shahpur" {
				t.Fatalf("expected the default location to be loaded, got %v", calls)
			}
		})
	}
}

func TestSearchTrimsAndIgnoresBlankInput(t *testing.T) {
	gateway := &fakeGateway{fetch: succeed}
	uc := newUseCase(gateway, state.NewMemoryStore())

	for _, blank := range []string{"", "   ", "\t\n"} {
		got, err := uc.Search(context.Background(), blank)
		if err != nil {
			t.Fatalf("search %q: %v", blank, err)
		}
		if !got.IsIdle() {
			t.Fatalf("blank search %q changed state to %s", blank, got.Status)
		}
	}
	if calls := gateway.calls(); len(calls) != 0 {
		t.Fatalf("expected no fetch for blank input, got %v", calls)
	}

	got, err := uc.Search(context.Background(), "  Paris  ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got.Query != "Paris" || gateway.calls()[0] != "Paris" {
		t.Fatalf("expected trimmed query, state=%q calls=%v", got.Query, gateway.calls())
	}
}

func TestSearchStoresLoadingWhileFetching(t *testing.T) {
	store := state.NewMemoryStore()
	var seen model.DashboardState
	gateway := &fakeGateway{fetch: func(ctx context.Context, query string, days int) (*entity.ForecastBundle, error) {
		seen, _ = store.Load(ctx)
		return bundleFor(query), nil
	}}
	uc := newUseCase(gateway, store)
	uc.(*dashboardUseCase).newRequestID = func() string { return "req-42" }

	final, err := uc.Search(context.Background(), "Oslo")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !seen.IsLoading() || seen.Query != "Oslo" || seen.RequestID != "req-42" {
		t.Fatalf("expected loading state during fetch, got %+v", seen)
	}
	if final.Status != model.DashboardLoaded || final.RequestID != "req-42" {
		t.Fatalf("unexpected final state %+v", final)
	}
}

func TestSearchFailureClearsBundle(t *testing.T) {
	fail := false
	gateway := &fakeGateway{fetch: func(ctx context.Context, query string, days int) (*entity.ForecastBundle, error) {
		if fail {
			return nil, model.NewProviderError(400, 1006, "No matching location found.")
		}
		return bundleFor(query), nil
	}}
	uc := newUseCase(gateway, state.NewMemoryStore())

	if _, err := uc.Search(context.Background(), "Shahpur"); err != nil {
		t.Fatalf("search: %v", err)
	}

	fail = true
	got, err := uc.Search(context.Background(), "Nonexistent City 12345")
	if err != nil {
		t.Fatalf("a failed fetch is a state, not an error: %v", err)
	}
	if got.Status != model.DashboardFailed || got.Bundle != nil {
		t.Fatalf("expected failed state without bundle, got %+v", got)
	}
	if got.Error.Kind != model.ErrorKindProvider || got.Error.Message != "No matching location found." {
		t.Fatalf("unexpected error %+v", got.Error)
	}

	// the dashboard stays usable after a failure
	fail = false
	got, _ = uc.Search(context.Background(), "Shahpur")
	if got.Status != model.DashboardLoaded {
		t.Fatalf("expected recovery on the next search, got %s", got.Status)
	}
}

func TestSearchIsNotCancelledWithRequest(t *testing.T) {
	gateway := &fakeGateway{fetch: func(ctx context.Context, query string, days int) (*entity.ForecastBundle, error) {
		if ctx.Err() != nil {
			return nil, model.NewNetworkError(ctx.Err())
		}
		return bundleFor(query), nil
	}}
	uc := newUseCase(gateway, state.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := uc.Search(ctx, "Lima")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got.Status != model.DashboardLoaded {
		t.Fatalf("expected the fetch to complete despite the cancelled request, got %+v", got)
	}
}

func TestOverlappingSearchesLastWriteWins(t *testing.T) {
	releaseSlow := make(chan struct{})
	slowStarted := make(chan struct{})
	gateway := &fakeGateway{fetch: func(ctx context.Context, query string, days int) (*entity.ForecastBundle, error) {
		if query == "Slow" {
			close(slowStarted)
			<-releaseSlow
		}
		return bundleFor(query), nil
	}}
	store := state.NewMemoryStore()
	uc := newUseCase(gateway, store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Search(context.Background(), "Slow")
	}()

	<-slowStarted
	if _, err := uc.Search(context.Background(), "Fast"); err != nil {
		t.Fatalf("search: %v", err)
	}
	close(releaseSlow)
	<-done

	final, _ := store.Load(context.Background())
	if final.Bundle == nil || final.Bundle.Location.Name != "Slow" {
		t.Fatalf("expected the later-resolving search to own the slot, got %+v", final)
	}
	if calls := gateway.calls(); len(calls) != 2 {
		t.Fatalf("expected two independent fetches, got %v", calls)
	}
}

func TestForecastDoesNotTouchState(t *testing.T) {
	gateway := &fakeGateway{fetch: succeed}
	store := state.NewMemoryStore()
	uc := newUseCase(gateway, store)

	bundle, err := uc.Forecast(context.Background(), " Rome ", 0)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if bundle.Location.Name != "Rome" {
		t.Fatalf("unexpected bundle %+v", bundle)
	}
	if gateway.days[0] != api.DefaultHorizonDays {
		t.Fatalf("expected default horizon, got %d", gateway.days[0])
	}

	current, _ := store.Load(context.Background())
	if !current.IsIdle() {
		t.Fatalf("expected state untouched, got %s", current.Status)
	}

	if _, err := uc.Forecast(context.Background(), "  ", 3); !errors.Is(err, api.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

type brokenStore struct{ state.Store }

func (brokenStore) Load(ctx context.Context) (model.DashboardState, error) {
	return model.NewIdleState(), errors.New("redis: connection refused")
}

func TestSearchSurfacesStoreFailure(t *testing.T) {
	gateway := &fakeGateway{fetch: succeed}
	uc := newUseCase(gateway, brokenStore{})

	if _, err := uc.Search(context.Background(), "Shahpur"); err == nil {
		t.Fatal("expected store failure to be returned")
	}
	if len(gateway.calls()) != 0 {
		t.Fatal("expected no fetch when the state cannot be loaded")
	}
}
