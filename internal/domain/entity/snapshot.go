package entity

import (
	"time"

	"abohawa-api/internal/domain/indicator"
)

// CurrentConditions is the present-moment reading for a location.
type CurrentConditions struct {
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feelsLike"`
	TempMin       float64   `json:"tempMin"`
	TempMax       float64   `json:"tempMax"`
	Humidity      int       `json:"humidity"`
	Pressure      float64   `json:"pressure"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDegrees   float64   `json:"windDegrees"`
	Visibility    int       `json:"visibility"`
	Cloudiness    int       `json:"cloudiness"`
	Condition     string    `json:"condition"`
	ConditionDesc string    `json:"conditionDescription"`
	Icon          string    `json:"icon"`
	Sunrise       time.Time `json:"sunrise"`
	Sunset        time.Time `json:"sunset"`
	ObservedAt    time.Time `json:"observedAt"`
}

// ForecastPeriod is one day of the five-day outlook, aggregated from the
// provider's three-hourly steps.
type ForecastPeriod struct {
	Day           string  `json:"day"`
	TempMin       float64 `json:"tempMin"`
	TempMax       float64 `json:"tempMax"`
	Condition     string  `json:"condition"`
	ConditionDesc string  `json:"conditionDescription"`
	Icon          string  `json:"icon"`
}

// HourlyPoint is a single step of the hour-level series.
type HourlyPoint struct {
	At          time.Time `json:"at"`
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Condition   string    `json:"condition"`
	Icon        string    `json:"icon"`
}

// Indicators holds the qualitative tiers derived from the snapshot's raw
// readings. They are recomputed on every cycle, never persisted.
type Indicators struct {
	AQI           indicator.AQITier    `json:"aqi"`
	AQIBadge      indicator.AQIBadge   `json:"aqiBadge"`
	UV            indicator.UVTier     `json:"uv"`
	Wind          indicator.WindSector `json:"wind"`
	PressureTrend indicator.Trend      `json:"pressureTrend"`
	DayFraction   float64              `json:"dayFraction"`
	DayPhase      indicator.DayPhase   `json:"dayPhase"`
}

// WeatherSnapshot is the merged result of one successful orchestration
// cycle. It is immutable and replaced wholesale; a failed cycle never
// touches the previous snapshot.
type WeatherSnapshot struct {
	Location   Location          `json:"location"`
	Current    CurrentConditions `json:"current"`
	Forecast   []ForecastPeriod  `json:"forecast"`
	Hourly     []HourlyPoint     `json:"hourly"`
	AirQuality int               `json:"airQuality"`
	UVIndex    float64           `json:"uvIndex"`
	Indicators Indicators        `json:"indicators"`
	FetchedAt  time.Time         `json:"fetchedAt"`
}
