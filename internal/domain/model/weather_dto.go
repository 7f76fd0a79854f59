package model

import (
	"abohawa-api/internal/domain/entity"
	"abohawa-api/pkg/msg"
	"abohawa-api/pkg/util/numerals"
)

// SnapshotDisplay carries the ready-to-render strings of a snapshot in the
// configured locale: numbers in localized digits, indicator labels resolved
// from the message catalog.
type SnapshotDisplay struct {
	Temperature   string `json:"temperature"`
	FeelsLike     string `json:"feelsLike"`
	Humidity      string `json:"humidity"`
	WindSpeed     string `json:"windSpeed"`
	AQI           string `json:"aqi"`
	AQILabel      string `json:"aqiLabel"`
	AQIAdvisory   string `json:"aqiAdvisory"`
	UVIndex       string `json:"uvIndex"`
	UVLabel       string `json:"uvLabel"`
	WindDirection string `json:"windDirection"`
	PressureTrend string `json:"pressureTrend"`
	DayPhase      string `json:"dayPhase"`
}

// SnapshotResponse is the delivery payload for a weather snapshot.
type SnapshotResponse struct {
	*entity.WeatherSnapshot
	Display SnapshotDisplay `json:"display"`
}

// NewSnapshotResponse localizes a snapshot for delivery.
func NewSnapshotResponse(snapshot *entity.WeatherSnapshot) *SnapshotResponse {
	locale := msg.Locale()
	ind := snapshot.Indicators

	return &SnapshotResponse{
		WeatherSnapshot: snapshot,
		Display: SnapshotDisplay{
			Temperature:   numerals.FormatFloat(locale, snapshot.Current.Temperature, 1),
			FeelsLike:     numerals.FormatFloat(locale, snapshot.Current.FeelsLike, 1),
			Humidity:      numerals.FormatInt(locale, int64(snapshot.Current.Humidity)),
			WindSpeed:     numerals.FormatFloat(locale, snapshot.Current.WindSpeed, 1),
			AQI:           numerals.FormatInt(locale, int64(snapshot.AirQuality)),
			AQILabel:      msg.GetLocalized(ind.AQI.LabelKey),
			AQIAdvisory:   msg.GetLocalized(ind.AQI.AdvisoryKey),
			UVIndex:       numerals.FormatFloat(locale, snapshot.UVIndex, 1),
			UVLabel:       msg.GetLocalized(ind.UV.LabelKey),
			WindDirection: msg.GetLocalized(ind.Wind.LabelKey),
			PressureTrend: msg.GetLocalized(ind.PressureTrend.LabelKey()),
			DayPhase:      msg.GetLocalized(ind.DayPhase.LabelKey),
		},
	}
}

// AddFavoriteDTO is the request body for adding a favorite location.
type AddFavoriteDTO struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// ReorderFavoritesDTO is the request body for moving a favorite to a new slot.
type ReorderFavoritesDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}
