package api

import (
	"fmt"
	"strconv"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/model/external"
	"abohawa-api/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface against the
// OpenWeatherMap API.
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	lang       string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseURL, apiKey, lang string, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
		lang:       lang,
	}
}

// coordParams builds the query parameters shared by the metric endpoints.
func (w *weatherGatewayImpl) coordParams(lat, lon float64) map[string]string {
	return map[string]string{
		"lat":   formatCoord(lat),
		"lon":   formatCoord(lon),
		"units": "metric",
		"lang":  w.lang,
		"appid": w.apiKey,
	}
}

// CurrentConditions returns the present-moment reading for the coordinates
func (w *weatherGatewayImpl) CurrentConditions(lat, lon float64) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.coordParams(lat, lon)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.CurrentWeatherResponse), nil
	}
	return nil, w.wrapError("current conditions", errResp, err)
}

// Forecast returns the 40-step, three-hourly five-day forecast
func (w *weatherGatewayImpl) Forecast(lat, lon float64) (*external.ForecastResponse, error) {
	params := w.coordParams(lat, lon)
	params["cnt"] = "40"

	successResp, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(params).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}
	return nil, w.wrapError("forecast", errResp, err)
}

// HourlyForecast returns the three-hourly list used for hour-level display
func (w *weatherGatewayImpl) HourlyForecast(lat, lon float64) (*external.ForecastResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.coordParams(lat, lon)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}
	return nil, w.wrapError("hourly forecast", errResp, err)
}

// AirPollution returns the air-quality reading. The endpoint takes no
// language or units parameters.
func (w *weatherGatewayImpl) AirPollution(lat, lon float64) (*external.AirPollutionResponse, error) {
	params := map[string]string{
		"lat":   formatCoord(lat),
		"lon":   formatCoord(lon),
		"appid": w.apiKey,
	}

	successResp, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/air_pollution").
		WithQueryParams(params).
		WithSuccessResp(&external.AirPollutionResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.AirPollutionResponse), nil
	}
	return nil, w.wrapError("air pollution", errResp, err)
}

// UVForecast returns the single-day UV peak forecast
func (w *weatherGatewayImpl) UVForecast(lat, lon float64) (*external.UVForecastResponse, error) {
	params := map[string]string{
		"lat":   formatCoord(lat),
		"lon":   formatCoord(lon),
		"cnt":   "1",
		"appid": w.apiKey,
	}

	successResp, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/uvi/forecast").
		WithQueryParams(params).
		WithSuccessResp(&external.UVForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.UVForecastResponse), nil
	}
	return nil, w.wrapError("uv forecast", errResp, err)
}

// FindLocations searches candidate locations by free-text name
func (w *weatherGatewayImpl) FindLocations(query string) ([]entity.Location, error) {
	params := map[string]string{
		"q":     query,
		"type":  "like",
		"sort":  "population",
		"cnt":   "5",
		"appid": w.apiKey,
	}

	successResp, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/find").
		WithQueryParams(params).
		WithSuccessResp(&external.LocationSearchResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.LocationSearchResponse).ToLocations(), nil
	}
	return nil, w.wrapError("location search", errResp, err)
}

// wrapError prefers the provider's error message when one was decoded.
func (w *weatherGatewayImpl) wrapError(operation string, errResp any, err error) error {
	if errResp != nil {
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Message != "" {
			return fmt.Errorf("%s request rejected: %s", operation, apiErr.Message)
		}
	}
	return fmt.Errorf("%s request failed: %w", operation, err)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
