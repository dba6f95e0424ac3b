package model

import "strings"

const (
	ThemeClassic = "classic"
	ThemeHero    = "hero"
)

// Theme selects how the single dashboard view is dressed.
type Theme struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Headline        string `json:"headline"`
	DefaultLocation string `json:"defaultLocation"`
	SearchHint      string `json:"searchHint"`
	// BackgroundImages rotate behind the hero layout; empty means a flat background.
	BackgroundImages []string `json:"backgroundImages,omitempty"`
	// ClearSearchOnSubmit empties the search box after a search instead of keeping the query.
	ClearSearchOnSubmit bool `json:"clearSearchOnSubmit"`
}

// ClassicTheme is the card layout with a blue gradient hero card.
func ClassicTheme() Theme {
	return Theme{
		Name:            ThemeClassic,
		Title:           "Weather Update",
		DefaultLocation: "Dharmshala Himachal Pradesh",
		SearchHint:      "Enter city name",
	}
}

// HeroTheme is the full-screen layout with rotating background photos.
func HeroTheme() Theme {
	return Theme{
		Name:            ThemeHero,
		Title:           "Weather Update",
		Headline:        "Discover the Weather in every city you go",
		DefaultLocation: "Shahpur",
		SearchHint:      "Search for a City",
		BackgroundImages: []string{
			"/static/weather1.jpeg",
			"/static/weather2.jpeg",
			"/static/weather3.jpeg",
			"/static/weather3.jpeg",
		},
		ClearSearchOnSubmit: true,
	}
}

// ThemeByName returns the built-in theme called name, defaulting to classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeHero:
		return HeroTheme()
	default:
		return ClassicTheme()
	}
}
