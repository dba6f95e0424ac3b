package health

import (
	"context"

	"weather-dashboard/internal/domain/gateway/state"
	"weather-dashboard/internal/domain/model"
)

type healthUseCase struct {
	stateStore state.Store
}

func NewHealthUseCase(stateStore state.Store) UseCase {
	return &healthUseCase{stateStore: stateStore}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storeHealth := useCase.stateStore.Health(ctx)

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:     overallStatus,
		StateStore: storeHealth,
	}
}
