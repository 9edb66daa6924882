package models

// Forecast is the trimmed Open-Meteo payload the dashboard renders.
type Forecast struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Condition   string  `json:"condition"`
	WindSpeed   float64 `json:"wind_speed"`
	Humidity    float64 `json:"humidity"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
	FetchedAt   string  `json:"fetched_at"`
}
