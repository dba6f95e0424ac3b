package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

const forecastPath = "/forecast.json"

// forecastGatewayImpl implements ForecastGateway against WeatherAPI.com
type forecastGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewForecastGateway creates a ForecastGateway for the provider at baseUrl.
// The key query parameter is always redacted from request logs.
func NewForecastGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) ForecastGateway {
	clientOptions.RedactQueryParams = append(clientOptions.RedactQueryParams, "key")

	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
	}
}

// FetchForecast gets the forecast for query and normalizes it into a bundle
func (g *forecastGatewayImpl) FetchForecast(ctx context.Context, query string, horizonDays int) (*entity.ForecastBundle, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{
			"key":    g.apiKey,
			"q":      query,
			"days":   strconv.Itoa(horizonDays),
			"aqi":    "no",
			"alerts": "no",
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.ForecastResponse)
		return toForecastBundle(response), nil
	}

	// No status means no response; a 2xx with an error means the body was not valid JSON.
	if status == 0 {
		return nil, model.NewNetworkError(transportCause(err))
	}
	if status >= 200 && status < 300 {
		return nil, model.NewNetworkError(decodeCause(err))
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		return nil, model.NewProviderError(status, errorResponse.Error.Code, errorResponse.Error.Message)
	}

	return nil, model.NewProviderError(status, 0, "")
}

// transportCause strips the *url.Error envelope, whose message embeds the request URL and API key.
func transportCause(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

// decodeCause drops the client's decoding context and keeps the decoder's own message.
func decodeCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return cause
	}
	return err
}

// toForecastBundle converts the provider response, keeping hours for the first day only
func toForecastBundle(response *external.ForecastResponse) *entity.ForecastBundle {
	days := make([]entity.DayForecast, 0, len(response.Forecast.ForecastDay))
	for i, forecastDay := range response.Forecast.ForecastDay {
		day := entity.DayForecast{
			Date:      forecastDay.Date,
			DateEpoch: forecastDay.DateEpoch,
			Day: entity.DaySummary{
				AvgTempC:  forecastDay.Day.AvgTempC,
				MinTempC:  forecastDay.Day.MinTempC,
				MaxTempC:  forecastDay.Day.MaxTempC,
				Condition: toCondition(forecastDay.Day.Condition),
			},
			Astro: entity.AstroTimes{
				Sunrise: forecastDay.Astro.Sunrise,
				Sunset:  forecastDay.Astro.Sunset,
			},
		}
		if i == 0 {
			day.Hour = toHours(forecastDay.Hour)
		}
		days = append(days, day)
	}

	return &entity.ForecastBundle{
		Location: entity.Location{
			Name:      response.Location.Name,
			Region:    response.Location.Region,
			Country:   response.Location.Country,
			LocalTime: response.Location.LocalTime,
		},
		Current: entity.CurrentObservation{
			TempC:     response.Current.TempC,
			Condition: toCondition(response.Current.Condition),
			WindKph:   response.Current.WindKph,
			Humidity:  response.Current.Humidity,
			UV:        response.Current.UV,
		},
		Forecast: entity.Forecast{ForecastDay: days},
	}
}

func toHours(hours []external.HourDTO) []entity.HourForecast {
	if len(hours) == 0 {
		return nil
	}

	result := make([]entity.HourForecast, 0, len(hours))
	for _, hour := range hours {
		result = append(result, entity.HourForecast{
			TimeEpoch: hour.TimeEpoch,
			Time:      hour.Time,
			TempC:     hour.TempC,
			Condition: toCondition(hour.Condition),
		})
	}
	return result
}

func toCondition(condition external.ConditionDTO) entity.Condition {
	return entity.Condition{Text: condition.Text, Icon: condition.Icon, Code: condition.Code}
}
