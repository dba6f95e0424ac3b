package background

import (
	"sync"
	"testing"

	"weather-dashboard/internal/domain/model"
)

func TestNextWrapsAround(t *testing.T) {
	uc := NewBackgroundUseCase(model.HeroTheme().BackgroundImages)

	if got := uc.Current(); got.Index != 0 || got.Image != "/static/weather1.jpeg" {
		t.Fatalf("unexpected initial background %+v", got)
	}

	expected := []int{1, 2, 3, 0, 1}
	for i, want := range expected {
		if got := uc.Next(); got.Index != want {
			t.Fatalf("step %d: expected index %d, got %d", i, want, got.Index)
		}
	}
	if got := uc.Current(); got.Image != "/static/weather2.jpeg" {
		t.Fatalf("expected current to follow Next, got %+v", got)
	}
}

func TestNoImagesIsDisabled(t *testing.T) {
	uc := NewBackgroundUseCase(nil)

	if uc.Enabled() {
		t.Fatal("expected rotator without images to be disabled")
	}
	if got := uc.Next(); got != (model.BackgroundDTO{}) {
		t.Fatalf("expected zero background, got %+v", got)
	}
}

func TestConcurrentRotation(t *testing.T) {
	images := []string{"a", "b", "c"}
	uc := NewBackgroundUseCase(images)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.Next()
			uc.Current()
		}()
	}
	wg.Wait()

	// 30 steps over 3 images lands back on the first one
	if got := uc.Current(); got.Index != 0 || got.Image != "a" {
		t.Fatalf("unexpected background after full cycles %+v", got)
	}
}
