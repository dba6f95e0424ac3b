package background

import "weather-dashboard/internal/domain/model"

type UseCase interface {
	Current() model.BackgroundDTO
	Next() model.BackgroundDTO
	Enabled() bool
}
