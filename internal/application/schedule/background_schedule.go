package schedule

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/background"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

const DefaultRotationCron = "@every 7s"

type BackgroundScheduler struct {
	cron           *cron.Cron
	useCase        background.UseCase
	cronExpression string
}

func NewBackgroundScheduler(useCase background.UseCase, cronExpression string) *BackgroundScheduler {
	if cronExpression == "" {
		cronExpression = DefaultRotationCron
	}
	return &BackgroundScheduler{cron: cron.New(), useCase: useCase, cronExpression: cronExpression}
}

// InitBackgroundScheduleTasks starts the rotation. Themes without images schedule nothing.
func (scheduler *BackgroundScheduler) InitBackgroundScheduleTasks() error {
	if !scheduler.useCase.Enabled() {
		log.Info(msg.GetMessage("background.cron.disabled"))
		return nil
	}

	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.RotateBackground); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("background.cron.start", scheduler.cronExpression))
	return nil
}

func (scheduler *BackgroundScheduler) RotateBackground() {
	current := scheduler.useCase.Next()
	log.Debug(msg.GetMessage("background.cron.tick"), zap.Int("index", current.Index), zap.String("image", current.Image))
}

// Stop waits for a running rotation to finish.
func (scheduler *BackgroundScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}
