package view

import "testing"

func TestPresentationHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"round up", RoundTemp(23.5), 24},
		{"round down", RoundTemp(18.2), 18},
		{"round negative", RoundTemp(-0.4), 0},
		{"large icon", LargeIcon("//cdn.weatherapi.com/weather/64x64/day/113.png"), "//cdn.weatherapi.com/weather/128x128/day/113.png"},
		{"icon without size", LargeIcon("icon.png"), "icon.png"},
		{"short weekday", WeekdayShort("2025-07-31"), "THU"},
		{"short weekday bad input", WeekdayShort("soon"), "soon"},
		{"long weekday", WeekdayLong("2025-07-31 14:05"), "Thursday"},
		{"hour label", HourLabel("2025-07-31 15:00"), "03 PM"},
		{"hour label midnight", HourLabel("2025-07-31 00:00"), "12 AM"},
		{"uv integer", UVLabel(7), "7 of 10"},
		{"uv fraction", UVLabel(2.5), "2.5 of 10"},
		{"clock", Clock("2025-07-31 14:05"), "02:05 PM"},
		{"clock bad input", Clock(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestShowHourTickEveryThirdHour(t *testing.T) {
	var labelled []int
	for i := 0; i < 24; i++ {
		if ShowHourTick(i) {
			labelled = append(labelled, i)
		}
	}
	if len(labelled) != 8 || labelled[0] != 0 || labelled[1] != 3 || labelled[7] != 21 {
		t.Fatalf("unexpected labelled hours %v", labelled)
	}
}
