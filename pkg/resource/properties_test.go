package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitResolvesEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_WEATHER_API_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "application.yml")
	content := []byte(`
app:
  server:
    port: ${TEST_UNSET_PORT:8080}
  weather-api:
    key: ${TEST_WEATHER_API_KEY:}
    base-url: https://api.weatherapi.com/v1
    read-timeout: 60s
    horizon-days: 7
  dashboard:
    themes:
      hero:
        background-images:
          - /static/weather1.jpeg
          - /static/weather2.jpeg
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("init: %v", err)
	}

	if got := GetString("app.weather-api.key"); got != "from-env" {
		t.Errorf("expected env value, got %q", got)
	}
	if got := GetString("app.server.port"); got != "8080" {
		t.Errorf("expected placeholder default, got %q", got)
	}
	if got := GetString("app.weather-api.base-url"); got != "https://api.weatherapi.com/v1" {
		t.Errorf("expected plain value unchanged, got %q", got)
	}
	if got := GetDuration("app.weather-api.read-timeout"); got != 60*time.Second {
		t.Errorf("expected 60s, got %v", got)
	}
	if got := GetIntOrDefault("app.weather-api.horizon-days", 3); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := GetStringSlice("app.dashboard.themes.hero.background-images"); len(got) != 2 {
		t.Errorf("expected two images, got %v", got)
	}
}

func TestDefaultsForUnsetKeys(t *testing.T) {
	if got := GetStringOrDefault("app.unset", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := GetDurationOrDefault("app.unset", 5*time.Second); got != 5*time.Second {
		t.Errorf("expected 5s, got %v", got)
	}
	if got := GetIntOrDefault("app.unset", 7); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}
