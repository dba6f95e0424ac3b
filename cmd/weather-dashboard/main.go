package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-dashboard/configs"
	_ "weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/application/view"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/state"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/background"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

// @title Weather Dashboard API
// @version 1.0
// @description Current conditions and multi-day forecasts for a searched location.
// @BasePath /
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName), zap.String("properties", configs.Env.PropertiesFile))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("Fail to parse dashboard templates: %v", err)
	}
	e.Renderer = renderer
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	e.Static("/static", resource.GetStringOrDefault("app.server.static-dir", "web/static"))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	router := e.Group(resource.GetString("app.server.context-path"))

	// Init ForecastGateway
	forecastGateway := newForecastGateway()

	// Init StateStore
	stateStore, closeStore := newStateStore()
	defer closeStore()

	// Init UseCase
	theme := loadTheme()
	dashboardUseCase := dashboard.NewDashboardUseCase(
		theme,
		resource.GetIntOrDefault("app.weather-api.horizon-days", api.DefaultHorizonDays),
		resource.GetDurationOrDefault("app.weather-api.read-timeout", dashboard.DefaultLoadingTimeout),
		forecastGateway,
		stateStore,
	)
	backgroundUseCase := background.NewBackgroundUseCase(theme.BackgroundImages)
	healthUseCase := health.NewHealthUseCase(stateStore)

	// Init Controller
	dashboardController := controller.NewDashboardController(router, dashboardUseCase, backgroundUseCase)
	forecastController := controller.NewForecastController(router, dashboardUseCase)
	healthController := controller.NewHealthController(router, healthUseCase)

	// Init Routes
	dashboardController.InitDashboardRoutes()
	forecastController.InitForecastRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	backgroundScheduler := schedule.NewBackgroundScheduler(backgroundUseCase, resource.GetString("app.dashboard.rotation-cron"))
	if err := backgroundScheduler.InitBackgroundScheduleTasks(); err != nil {
		log.Fatalf("Fail to schedule background rotation: %v", err)
	}
	defer backgroundScheduler.Stop()

	// Start Routes
	go func() {
		if err := e.Start(":" + resource.GetStringOrDefault("app.server.port", "8080")); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("Fail to start server: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", theme.Name), zap.String("default_location", theme.DefaultLocation))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	log.Info(msg.GetMessage("app.stopping", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error(msg.GetMessage("app.stop-failed", err))
	}
}

func newForecastGateway() api.ForecastGateway {
	return api.NewForecastGateway(
		resource.GetStringOrDefault("app.weather-api.base-url", "https://api.weatherapi.com/v1"),
		resource.GetString("app.weather-api.key"),
		http.ClientOptions{
			DefaultContentType: "application/json",
			ConnectionTimeout:  resource.GetDurationOrDefault("app.weather-api.connection-timeout", 5*time.Second),
			ReadTimeout:        resource.GetDuration("app.weather-api.read-timeout"),
			Logger:             api.NewProviderLogger(),
		},
	)
}

// newStateStore returns the configured dashboard state store and a func releasing it.
func newStateStore() (state.Store, func()) {
	if resource.GetStringOrDefault("app.dashboard.state-store", "memory") != "redis" {
		log.Info(msg.GetMessage("app.state-store", "memory"))
		return state.NewMemoryStore(), func() {}
	}

	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	redisClient, err := redis.NewClient(redisConfig)
	if err != nil {
		log.Fatalf("Fail to connect to redis at %s: %v", redisConfig.Addr(), err)
	}
	log.Info(msg.GetMessage("app.state-store", "redis"), zap.String("addr", redisConfig.Addr()))

	store := state.NewRedisStore(redisClient, resource.GetString("app.redis.state-key"), resource.GetDuration("app.redis.state-ttl"))
	return store, func() {
		if err := redisClient.Close(); err != nil {
			log.Error(msg.GetMessage("app.stop-failed", err))
		}
	}
}

// loadTheme picks the configured theme and applies any overrides found under app.dashboard.themes.<name>.
func loadTheme() model.Theme {
	theme := model.ThemeByName(resource.GetString("app.dashboard.theme"))
	prefix := "app.dashboard.themes." + theme.Name + "."

	theme.Title = resource.GetStringOrDefault(prefix+"title", theme.Title)
	theme.Headline = resource.GetStringOrDefault(prefix+"headline", theme.Headline)
	theme.DefaultLocation = resource.GetStringOrDefault(prefix+"default-location", theme.DefaultLocation)
	theme.SearchHint = resource.GetStringOrDefault(prefix+"search-hint", theme.SearchHint)
	if images := resource.GetStringSlice(prefix + "background-images"); len(images) > 0 {
		theme.BackgroundImages = images
	}
	return theme
}
