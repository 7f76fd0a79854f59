package api

import (
	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/model/external"
)

// WeatherGateway defines the weather provider's five data endpoints plus the
// location search. All coordinate-based calls target the same (lat, lon).
type WeatherGateway interface {
	// CurrentConditions returns the present-moment reading for the coordinates
	CurrentConditions(lat, lon float64) (*external.CurrentWeatherResponse, error)

	// Forecast returns the 40-step, three-hourly five-day forecast
	Forecast(lat, lon float64) (*external.ForecastResponse, error)

	// HourlyForecast returns the three-hourly list used for hour-level display
	HourlyForecast(lat, lon float64) (*external.ForecastResponse, error)

	// AirPollution returns the air-quality reading
	AirPollution(lat, lon float64) (*external.AirPollutionResponse, error)

	// UVForecast returns the single-day UV peak forecast
	UVForecast(lat, lon float64) (*external.UVForecastResponse, error)

	// FindLocations searches candidate locations by free-text name,
	// ranked by population on the provider side, capped at five
	FindLocations(query string) ([]entity.Location, error)
}
