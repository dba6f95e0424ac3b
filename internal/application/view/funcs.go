package view

import (
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	providerDateLayout     = "2006-01-02"
	providerDateTimeLayout = "2006-01-02 15:04"
	hourTickInterval       = 3
)

// FuncMap exposes the presentation helpers to the dashboard templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"roundTemp":    RoundTemp,
		"largeIcon":    LargeIcon,
		"weekdayShort": WeekdayShort,
		"weekdayLong":  WeekdayLong,
		"hourLabel":    HourLabel,
		"showHourTick": ShowHourTick,
		"uvLabel":      UVLabel,
		"clock":        Clock,
	}
}

// RoundTemp rounds half away from zero, so 23.5 shows as 24 and -0.4 as 0.
func RoundTemp(celsius float64) int {
	return int(math.Round(celsius))
}

// LargeIcon swaps the provider's 64x64 icon for its 128x128 variant.
func LargeIcon(icon string) string {
	return strings.Replace(icon, "64x64", "128x128", 1)
}

// WeekdayShort turns "2025-07-31" into "THU". Unparseable dates are returned as is.
func WeekdayShort(date string) string {
	day, err := time.Parse(providerDateLayout, date)
	if err != nil {
		return date
	}
	return strings.ToUpper(day.Format("Mon"))
}

// WeekdayLong is the full weekday name of a provider local time such as "2025-07-31 14:05".
func WeekdayLong(localTime string) string {
	at, err := time.Parse(providerDateTimeLayout, localTime)
	if err != nil {
		return ""
	}
	return at.Format("Monday")
}

// HourLabel turns "2025-07-31 15:00" into "03 PM".
func HourLabel(hourTime string) string {
	at, err := time.Parse(providerDateTimeLayout, hourTime)
	if err != nil {
		return hourTime
	}
	return at.Format("03 PM")
}

// ShowHourTick labels every third hour of the trend starting at the first.
func ShowHourTick(index int) bool {
	return index%hourTickInterval == 0
}

func UVLabel(uv float64) string {
	return strconv.FormatFloat(uv, 'f', -1, 64) + " of 10"
}

// Clock is the 12-hour wall clock of a provider local time, "02:05 PM".
func Clock(localTime string) string {
	at, err := time.Parse(providerDateTimeLayout, localTime)
	if err != nil {
		return ""
	}
	return at.Format("03:04 PM")
}
