package external

import "abohawa-api/internal/domain/entity"

// WeatherConditionDTO is the condition block shared by every OpenWeather payload.
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainReadingsDTO carries the numeric readings shared by current and forecast payloads.
type MainReadingsDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WindDTO is the wind block of current and forecast payloads.
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// CloudsDTO is the cloud-cover block.
type CloudsDTO struct {
	All int `json:"all"`
}

// CurrentWeatherResponse represents the /weather payload.
type CurrentWeatherResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather    []WeatherConditionDTO `json:"weather"`
	Main       MainReadingsDTO       `json:"main"`
	Visibility int                   `json:"visibility"`
	Wind       WindDTO               `json:"wind"`
	Clouds     CloudsDTO             `json:"clouds"`
	Dt         int64                 `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

// Condition returns the first condition block, or a zero value when the
// provider sends an empty array.
func (r *CurrentWeatherResponse) Condition() WeatherConditionDTO {
	if len(r.Weather) == 0 {
		return WeatherConditionDTO{}
	}
	return r.Weather[0]
}

// ForecastEntryDTO is a single three-hour step of the /forecast payload.
type ForecastEntryDTO struct {
	Dt      int64                 `json:"dt"`
	Main    MainReadingsDTO       `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	Wind    WindDTO               `json:"wind"`
	DtTxt   string                `json:"dt_txt"`
}

// Condition returns the entry's first condition block, or a zero value.
func (e *ForecastEntryDTO) Condition() WeatherConditionDTO {
	if len(e.Weather) == 0 {
		return WeatherConditionDTO{}
	}
	return e.Weather[0]
}

// ForecastResponse represents the /forecast payload (three-hour steps).
type ForecastResponse struct {
	List []ForecastEntryDTO `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

// AirPollutionResponse represents the /air_pollution payload.
type AirPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Dt int64 `json:"dt"`
	} `json:"list"`
}

// AQIOrZero resolves the air-quality index, defaulting to 0 when the entry
// is absent from an otherwise successful payload.
func (r *AirPollutionResponse) AQIOrZero() int {
	if len(r.List) == 0 {
		return 0
	}
	return r.List[0].Main.AQI
}

// UVForecastResponse represents the /uvi/forecast payload.
type UVForecastResponse struct {
	Daily struct {
		UVIndexMax []float64 `json:"uv_index_max"`
	} `json:"daily"`
}

// PeakOrZero resolves the daily UV peak, defaulting to 0 when the entry is
// absent from an otherwise successful payload.
func (r *UVForecastResponse) PeakOrZero() float64 {
	if len(r.Daily.UVIndexMax) == 0 {
		return 0
	}
	return r.Daily.UVIndexMax[0]
}

// LocationSearchResponse represents the /find payload: candidates ranked by
// population on the provider side.
type LocationSearchResponse struct {
	List []struct {
		Name  string `json:"name"`
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Sys struct {
			Country string `json:"country"`
		} `json:"sys"`
		State string `json:"state"`
	} `json:"list"`
}

// ToLocations converts the candidates into entities, preserving the
// provider's ranking order.
func (r *LocationSearchResponse) ToLocations() []entity.Location {
	locations := make([]entity.Location, 0, len(r.List))
	for _, item := range r.List {
		locations = append(locations, entity.NewLocation(
			item.Name, item.Coord.Lat, item.Coord.Lon, item.Sys.Country, item.State))
	}
	return locations
}

// APIErrorResponse represents error payloads from the weather provider.
type APIErrorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}
