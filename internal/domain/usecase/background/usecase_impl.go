package background

import (
	"sync"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type backgroundUseCase struct {
	mu     sync.RWMutex
	images []string
	index  int
}

// NewBackgroundUseCase cycles through images in order, wrapping at the end.
func NewBackgroundUseCase(images []string) UseCase {
	return &backgroundUseCase{images: append([]string(nil), images...)}
}

func (uc *backgroundUseCase) Enabled() bool {
	return len(uc.images) > 0
}

func (uc *backgroundUseCase) Current() model.BackgroundDTO {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.dto()
}

func (uc *backgroundUseCase) Next() model.BackgroundDTO {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.images) == 0 {
		return model.BackgroundDTO{}
	}
	uc.index = (uc.index + 1) % len(uc.images)
	log.Debug(msg.GetMessage("background.rotated", uc.index, uc.images[uc.index]))
	return uc.dto()
}

func (uc *backgroundUseCase) dto() model.BackgroundDTO {
	if len(uc.images) == 0 {
		return model.BackgroundDTO{}
	}
	return model.BackgroundDTO{Index: uc.index, Image: uc.images[uc.index]}
}
