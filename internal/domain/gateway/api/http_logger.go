package api

import (
	"go.uber.org/zap"

	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// providerLogger writes outbound provider calls to the application log
type providerLogger struct{}

// NewProviderLogger returns an http.HTTPLogger backed by pkg/log.
func NewProviderLogger() http.HTTPLogger {
	return providerLogger{}
}

func (providerLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug(msg.GetMessage("weather-api.request", method, url),
		zap.String("method", method),
		zap.String("url", url))
}

func (providerLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Info(msg.GetMessage("weather-api.response", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (providerLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("weather-api.error", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}
