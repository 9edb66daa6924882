package weather

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/config"
	"github.com/pier41/crabhouse/internal/domain/models"
)

const (
	cacheTTL = 10 * time.Minute

	sunTimeLayout   = "2006-01-02T15:04"
	displayLayout   = "3:04 PM"
	currentFields   = "temperature_2m,apparent_temperature,weather_code,wind_speed_10m,relative_humidity_2m"
	dailyFields     = "temperature_2m_max,temperature_2m_min,sunrise,sunset"
	forecastTimeout = 10 * time.Second
)

// Service fetches the dashboard forecast from Open-Meteo. Results are
// cached briefly so every page load does not hit the upstream API.
type Service struct {
	client   *resty.Client
	cfg      config.WeatherConfig
	location *time.Location
	logger   *zap.Logger

	mu        sync.RWMutex
	cached    *models.Forecast
	fetchedAt time.Time
}

// NewService builds an Open-Meteo backed forecast service.
func NewService(cfg config.WeatherConfig, location *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(forecastTimeout)

	return &Service{
		client:   client,
		cfg:      cfg,
		location: location,
		logger:   logger,
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		FeelsLike   float64 `json:"apparent_temperature"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		Humidity    float64 `json:"relative_humidity_2m"`
	} `json:"current"`
	Daily struct {
		TempMax []float64 `json:"temperature_2m_max"`
		TempMin []float64 `json:"temperature_2m_min"`
		Sunrise []string  `json:"sunrise"`
		Sunset  []string  `json:"sunset"`
	} `json:"daily"`
}

// GetForecast returns the current forecast, or nil when the upstream
// is unreachable. The dashboard renders without the widget in that
// case, so there is no error to propagate.
func (s *Service) GetForecast(ctx context.Context) *models.Forecast {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < cacheTTL {
		cached := s.cached
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	var payload forecastResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":         s.cfg.Latitude,
			"longitude":        s.cfg.Longitude,
			"current":          currentFields,
			"daily":            dailyFields,
			"temperature_unit": "fahrenheit",
			"wind_speed_unit":  "mph",
			"timezone":         s.location.String(),
		}).
		SetResult(&payload).
		Get("/v1/forecast")
	if err != nil {
		s.logger.Warn("weather fetch failed", zap.Error(err))
		return s.staleForecast()
	}
	if resp.IsError() {
		s.logger.Warn("weather api error", zap.Int("status", resp.StatusCode()))
		return s.staleForecast()
	}

	now := time.Now().In(s.location)
	forecast := &models.Forecast{
		Temperature: payload.Current.Temperature,
		FeelsLike:   payload.Current.FeelsLike,
		Condition:   conditionLabel(payload.Current.WeatherCode),
		WindSpeed:   payload.Current.WindSpeed,
		Humidity:    payload.Current.Humidity,
		FetchedAt:   now.Format(displayLayout),
	}

	if len(payload.Daily.TempMax) > 0 {
		forecast.High = payload.Daily.TempMax[0]
	}
	if len(payload.Daily.TempMin) > 0 {
		forecast.Low = payload.Daily.TempMin[0]
	}
	if len(payload.Daily.Sunrise) > 0 {
		forecast.Sunrise = formatSunTime(payload.Daily.Sunrise[0])
	}
	if len(payload.Daily.Sunset) > 0 {
		forecast.Sunset = formatSunTime(payload.Daily.Sunset[0])
	}

	s.mu.Lock()
	s.cached = forecast
	s.fetchedAt = now
	s.mu.Unlock()

	return forecast
}

// staleForecast hands back the last good result past its TTL rather
// than dropping the widget entirely.
func (s *Service) staleForecast() *models.Forecast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

// conditionLabel maps WMO weather codes onto the coarse labels the
// dashboard shows.
func conditionLabel(code int) string {
	switch {
	case code == 0:
		return "Clear Skies"
	case code <= 3:
		return "Partly Cloudy"
	case code <= 67:
		return "Rainy"
	default:
		return "Cloudy"
	}
}

func formatSunTime(raw string) string {
	parsed, err := time.ParseInLocation(sunTimeLayout, raw, time.UTC)
	if err != nil {
		return raw
	}
	return parsed.Format(displayLayout)
}
