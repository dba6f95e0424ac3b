package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/util/numberutils"
)

// maxHorizonDays is the longest forecast the provider serves.
const maxHorizonDays = 14

type ForecastController struct {
	api     *echo.Group
	useCase dashboard.UseCase
}

func NewForecastController(api *echo.Group, useCase dashboard.UseCase) *ForecastController {
	return &ForecastController{api: api, useCase: useCase}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/api/forecast", controller.GetForecast)
}

// GetForecast godoc
// @Summary Get forecast
// @Description Fetch current conditions and a multi-day forecast for a free-text location. Does not change the dashboard state.
// @Tags forecast
// @Produce json
// @Param q query string true "City name, region or postal code"
// @Param days query int false "Forecast horizon in days (1-14)" default(7)
// @Success 200 {object} entity.ForecastBundle "Forecast bundle"
// @Failure 400 {object} model.ErrorResponseDTO "Provider rejected the query or invalid parameters"
// @Failure 502 {object} model.ErrorResponseDTO "Provider unreachable or response unreadable"
// @Router /api/forecast [get]
func (controller *ForecastController) GetForecast(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := numberutils.ToIntInRange(raw, 1, maxHorizonDays)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "days must be an integer between 1 and 14"})
		}
		days = parsed
	}

	bundle, err := controller.useCase.Forecast(c.Request().Context(), c.QueryParam("q"), days)
	if err != nil {
		return controller.writeError(c, err)
	}
	return c.JSON(http.StatusOK, bundle)
}

func (controller *ForecastController) writeError(c echo.Context, err error) error {
	if errors.Is(err, api.ErrEmptyQuery) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	response := model.ErrorResponseDTO{Kind: model.ErrorKindOf(err), Error: model.ErrorMessageOf(err)}
	switch response.Kind {
	case model.ErrorKindProvider:
		return c.JSON(http.StatusBadRequest, response)
	case model.ErrorKindNetwork:
		return c.JSON(http.StatusBadGateway, response)
	default:
		return c.JSON(http.StatusInternalServerError, response)
	}
}
