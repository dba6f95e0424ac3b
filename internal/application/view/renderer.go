package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/model"
)

const DashboardTemplate = "dashboard.html"

//go:embed templates/*.html
var templates embed.FS

// DashboardPage is everything the dashboard template renders from.
type DashboardPage struct {
	Theme       model.Theme
	State       model.DashboardState
	Background  model.BackgroundDTO
	SearchValue string
	SearchPath  string
	// BackgroundPath is polled by the page to follow the rotation.
	BackgroundPath string
}

// NewDashboardPage fills the search box with the last query unless the theme clears it.
func NewDashboardPage(theme model.Theme, state model.DashboardState, background model.BackgroundDTO, searchPath, backgroundPath string) DashboardPage {
	searchValue := state.Query
	if theme.ClearSearchOnSubmit {
		searchValue = ""
	}
	return DashboardPage{
		Theme:       theme,
		State:       state,
		Background:  background,
		SearchValue: searchValue,
		SearchPath:  searchPath,

		BackgroundPath: backgroundPath,
	}
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	parsed, err := template.New("").Funcs(FuncMap()).ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: parsed}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
