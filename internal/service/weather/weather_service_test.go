package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pier41/crabhouse/internal/config"
)

func TestConditionLabel(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear Skies"},
		{1, "Partly Cloudy"},
		{3, "Partly Cloudy"},
		{45, "Rainy"},
		{67, "Rainy"},
		{95, "Cloudy"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, conditionLabel(tc.code), "code %d", tc.code)
	}
}

func TestFormatSunTime(t *testing.T) {
	assert.Equal(t, "6:42 AM", formatSunTime("2026-08-30T06:42"))
	assert.Equal(t, "7:51 PM", formatSunTime("2026-08-30T19:51"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "garbage", formatSunTime("garbage"))
}

func newStubbedService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	svc := NewService(config.WeatherConfig{
		Latitude:  "38.97",
		Longitude: "-76.49",
		BaseURL:   server.URL,
	}, loc, nil)

	return svc, server
}

func TestGetForecast_ParsesAndCaches(t *testing.T) {
	var calls int
	svc, _ := newStubbedService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "fahrenheit", r.URL.Query().Get("temperature_unit"))
		assert.Equal(t, "America/New_York", r.URL.Query().Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {"temperature_2m": 86.5, "apparent_temperature": 92.1, "weather_code": 2, "wind_speed_10m": 9.4, "relative_humidity_2m": 68},
			"daily": {"temperature_2m_max": [91.0], "temperature_2m_min": [74.2], "sunrise": ["2026-08-30T06:42"], "sunset": ["2026-08-30T19:51"]}
		}`))
	})

	forecast := svc.GetForecast(context.Background())
	require.NotNil(t, forecast)
	assert.InDelta(t, 86.5, forecast.Temperature, 0.001)
	assert.Equal(t, "Partly Cloudy", forecast.Condition)
	assert.InDelta(t, 91.0, forecast.High, 0.001)
	assert.Equal(t, "6:42 AM", forecast.Sunrise)
	assert.Equal(t, "7:51 PM", forecast.Sunset)
	assert.NotEmpty(t, forecast.FetchedAt)

	// Second call inside the TTL is served from cache.
	second := svc.GetForecast(context.Background())
	assert.Same(t, forecast, second)
	assert.Equal(t, 1, calls)
}

func TestGetForecast_UpstreamFailureDegradesToNil(t *testing.T) {
	svc, _ := newStubbedService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Nil(t, svc.GetForecast(context.Background()))
}
