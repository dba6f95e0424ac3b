package external

// ForecastResponse is the body of a successful WeatherAPI.com /forecast.json call.
type ForecastResponse struct {
	Location LocationDTO `json:"location"`
	Current  CurrentDTO  `json:"current"`
	Forecast struct {
		ForecastDay []ForecastDayDTO `json:"forecastday"`
	} `json:"forecast"`
}

type LocationDTO struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocalTimeEpoch int64   `json:"localtime_epoch"`
	LocalTime      string  `json:"localtime"`
}

type ConditionDTO struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type CurrentDTO struct {
	LastUpdated string       `json:"last_updated"`
	TempC       float64      `json:"temp_c"`
	IsDay       int          `json:"is_day"`
	Condition   ConditionDTO `json:"condition"`
	WindKph     float64      `json:"wind_kph"`
	WindDegree  int          `json:"wind_degree"`
	PressureMb  float64      `json:"pressure_mb"`
	PrecipMm    float64      `json:"precip_mm"`
	Humidity    int          `json:"humidity"`
	Cloud       int          `json:"cloud"`
	FeelsLikeC  float64      `json:"feelslike_c"`
	UV          float64      `json:"uv"`
}

type ForecastDayDTO struct {
	Date      string    `json:"date"`
	DateEpoch int64     `json:"date_epoch"`
	Day       DayDTO    `json:"day"`
	Astro     AstroDTO  `json:"astro"`
	Hour      []HourDTO `json:"hour"`
}

type DayDTO struct {
	MaxTempC          float64      `json:"maxtemp_c"`
	MinTempC          float64      `json:"mintemp_c"`
	AvgTempC          float64      `json:"avgtemp_c"`
	MaxWindKph        float64      `json:"maxwind_kph"`
	TotalPrecipMm     float64      `json:"totalprecip_mm"`
	AvgHumidity       float64      `json:"avghumidity"`
	DailyChanceOfRain int          `json:"daily_chance_of_rain"`
	Condition         ConditionDTO `json:"condition"`
	UV                float64      `json:"uv"`
}

type AstroDTO struct {
	Sunrise  string `json:"sunrise"`
	Sunset   string `json:"sunset"`
	Moonrise string `json:"moonrise"`
	Moonset  string `json:"moonset"`
}

type HourDTO struct {
	TimeEpoch    int64        `json:"time_epoch"`
	Time         string       `json:"time"`
	TempC        float64      `json:"temp_c"`
	Condition    ConditionDTO `json:"condition"`
	WindKph      float64      `json:"wind_kph"`
	Humidity     int          `json:"humidity"`
	ChanceOfRain int          `json:"chance_of_rain"`
}

// APIErrorResponse is the error envelope returned with non-2xx statuses.
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
