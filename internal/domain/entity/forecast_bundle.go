package entity

import "errors"

// ErrEmptyForecast is returned by Validate when a bundle carries no forecast days.
var ErrEmptyForecast = errors.New("forecast has no days")

// Location is the place the provider resolved the query to.
type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentObservation holds the conditions at fetch time, in metric units.
type CurrentObservation struct {
	TempC     float64   `json:"temp_c"`
	Condition Condition `json:"condition"`
	WindKph   float64   `json:"wind_kph"`
	Humidity  int       `json:"humidity"`
	UV        float64   `json:"uv"`
}

// AstroTimes keeps provider formatted local times such as "06:12 AM".
type AstroTimes struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type DaySummary struct {
	AvgTempC  float64   `json:"avgtemp_c"`
	MinTempC  float64   `json:"mintemp_c"`
	MaxTempC  float64   `json:"maxtemp_c"`
	Condition Condition `json:"condition"`
}

type HourForecast struct {
	TimeEpoch int64     `json:"time_epoch"`
	Time      string    `json:"time"`
	TempC     float64   `json:"temp_c"`
	Condition Condition `json:"condition"`
}

// DayForecast is one calendar day. Only the first day of a bundle carries hours.
type DayForecast struct {
	Date      string         `json:"date"`
	DateEpoch int64          `json:"date_epoch"`
	Day       DaySummary     `json:"day"`
	Astro     AstroTimes     `json:"astro"`
	Hour      []HourForecast `json:"hour,omitempty"`
}

type Forecast struct {
	ForecastDay []DayForecast `json:"forecastday"`
}

// ForecastBundle is the normalized result of one successful forecast fetch.
// It is replaced wholesale on every fetch, never merged.
type ForecastBundle struct {
	Location Location           `json:"location"`
	Current  CurrentObservation `json:"current"`
	Forecast Forecast           `json:"forecast"`
}

// Days returns the forecast days in chronological order, today first.
func (b *ForecastBundle) Days() []DayForecast {
	if b == nil {
		return nil
	}
	return b.Forecast.ForecastDay
}

// Today returns the first forecast day.
func (b *ForecastBundle) Today() (DayForecast, bool) {
	days := b.Days()
	if len(days) == 0 {
		return DayForecast{}, false
	}
	return days[0], true
}

// TodayAstro returns sunrise and sunset for today, zero values when absent.
func (b *ForecastBundle) TodayAstro() AstroTimes {
	today, _ := b.Today()
	return today.Astro
}

// Hourly returns today's hourly trend.
func (b *ForecastBundle) Hourly() []HourForecast {
	today, _ := b.Today()
	return today.Hour
}

// Validate reports whether the bundle can be rendered in full.
func (b *ForecastBundle) Validate() error {
	if b == nil || len(b.Forecast.ForecastDay) == 0 {
		return ErrEmptyForecast
	}
	return nil
}
