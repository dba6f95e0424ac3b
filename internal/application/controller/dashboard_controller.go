package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-dashboard/internal/application/view"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/background"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

const (
	dashboardPageRoute   = "dashboard.page"
	dashboardSearchRoute = "dashboard.search"
	backgroundRoute      = "dashboard.background"
)

type DashboardController struct {
	api               *echo.Group
	useCase           dashboard.UseCase
	backgroundUseCase background.UseCase
}

func NewDashboardController(api *echo.Group, useCase dashboard.UseCase, backgroundUseCase background.UseCase) *DashboardController {
	return &DashboardController{api: api, useCase: useCase, backgroundUseCase: backgroundUseCase}
}

// InitDashboardRoutes initializes the page and its JSON counterparts
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/", controller.Page).Name = dashboardPageRoute
	controller.api.POST("/search", controller.SubmitSearch).Name = dashboardSearchRoute

	controller.api.GET("/api/dashboard", controller.GetState)
	controller.api.POST("/api/dashboard/search", controller.Search)
	controller.api.GET("/api/dashboard/background", controller.GetBackground).Name = backgroundRoute
}

// Page renders the dashboard, loading the default location on the first view.
func (controller *DashboardController) Page(c echo.Context) error {
	state, err := controller.useCase.Mount(c.Request().Context())
	if err != nil {
		return controller.renderUnavailable(c, err)
	}
	return controller.render(c, http.StatusOK, state)
}

// SubmitSearch handles the search form and goes back to the page.
func (controller *DashboardController) SubmitSearch(c echo.Context) error {
	var dto model.SearchRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if _, err := controller.useCase.Search(c.Request().Context(), dto.Location); err != nil {
		return controller.renderUnavailable(c, err)
	}
	return c.Redirect(http.StatusSeeOther, c.Echo().Reverse(dashboardPageRoute))
}

func (controller *DashboardController) render(c echo.Context, code int, state model.DashboardState) error {
	page := view.NewDashboardPage(
		controller.useCase.Theme(),
		state,
		controller.backgroundUseCase.Current(),
		c.Echo().Reverse(dashboardSearchRoute),
		c.Echo().Reverse(backgroundRoute),
	)
	return c.Render(code, view.DashboardTemplate, page)
}

// renderUnavailable shows the page in its failed state when the dashboard state
// cannot be read or stored. The store error itself only goes to the log.
func (controller *DashboardController) renderUnavailable(c echo.Context, err error) error {
	log.Error(msg.GetMessage("dashboard.unavailable"),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err))

	failed := model.NewIdleState().Fail(errors.New(msg.GetMessage("dashboard.unavailable")), time.Now())
	return controller.render(c, http.StatusInternalServerError, failed)
}

// GetState godoc
// @Summary Get dashboard state
// @Description Return the current dashboard view state: status, last query, forecast bundle or error
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.DashboardState "Current view state"
// @Failure 500 {object} map[string]string "State store unavailable"
// @Router /api/dashboard [get]
func (controller *DashboardController) GetState(c echo.Context) error {
	state, err := controller.useCase.State(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, state)
}

// Search godoc
// @Summary Search a location
// @Description Fetch the forecast for a location and store it as the dashboard state. Blank locations are ignored. A failed fetch is reported in the returned state, not as an HTTP error.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param search body model.SearchRequestDTO true "Location to search"
// @Success 200 {object} model.DashboardState "Resulting view state"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "State store unavailable"
// @Router /api/dashboard/search [post]
func (controller *DashboardController) Search(c echo.Context) error {
	var dto model.SearchRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	state, err := controller.useCase.Search(c.Request().Context(), dto.Location)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, state)
}

// GetBackground godoc
// @Summary Get current background
// @Description Return the background image currently shown by the hero theme
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.BackgroundDTO "Current background"
// @Success 204 "Theme has no background images"
// @Router /api/dashboard/background [get]
func (controller *DashboardController) GetBackground(c echo.Context) error {
	if !controller.backgroundUseCase.Enabled() {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, controller.backgroundUseCase.Current())
}
