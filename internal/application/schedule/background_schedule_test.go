package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"weather-dashboard/internal/domain/model"
)

type countingRotator struct {
	enabled bool
	calls   atomic.Int32
}

func (r *countingRotator) Current() model.BackgroundDTO { return model.BackgroundDTO{} }

func (r *countingRotator) Next() model.BackgroundDTO {
	n := r.calls.Add(1)
	return model.BackgroundDTO{Index: int(n)}
}

func (r *countingRotator) Enabled() bool { return r.enabled }

func TestSchedulerRotatesOnEveryTick(t *testing.T) {
	rotator := &countingRotator{enabled: true}
	scheduler := NewBackgroundScheduler(rotator, "@every 1s")

	if err := scheduler.InitBackgroundScheduleTasks(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer scheduler.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for rotator.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if rotator.calls.Load() == 0 {
		t.Fatal("expected at least one rotation")
	}
}

func TestSchedulerSkipsDisabledRotator(t *testing.T) {
	rotator := &countingRotator{}
	scheduler := NewBackgroundScheduler(rotator, "")

	if err := scheduler.InitBackgroundScheduleTasks(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer scheduler.Stop()

	if entries := scheduler.cron.Entries(); len(entries) != 0 {
		t.Fatalf("expected no cron entries, got %d", len(entries))
	}
}

func TestSchedulerRejectsInvalidExpression(t *testing.T) {
	scheduler := NewBackgroundScheduler(&countingRotator{enabled: true}, "not a cron")

	if err := scheduler.InitBackgroundScheduleTasks(); err == nil {
		t.Fatal("expected invalid cron expression to be rejected")
	}
}

func TestRotateBackgroundAdvances(t *testing.T) {
	rotator := &countingRotator{enabled: true}
	scheduler := NewBackgroundScheduler(rotator, DefaultRotationCron)

	scheduler.RotateBackground()
	scheduler.RotateBackground()

	if got := rotator.calls.Load(); got != 2 {
		t.Fatalf("expected 2 rotations, got %d", got)
	}
}
