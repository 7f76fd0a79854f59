package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "abohawa-api/pkg/http"
)

// newProvider serves canned JSON per path and records every query string.
func newProvider(t *testing.T, payloads map[string]any, status int) (*httptest.Server, map[string]url.Values) {
	t.Helper()
	seen := make(map[string]url.Values)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.URL.Path] = r.URL.Query()
		payload, ok := payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(server.Close)
	return server, seen
}

func newGateway(serverURL string) WeatherGateway {
	return NewWeatherGateway(serverURL, "test-key", "bn", pkghttp.ClientOptions{})
}

func TestCurrentConditionsSendsCoordinateParams(t *testing.T) {
	server, seen := newProvider(t, map[string]any{
		"/weather": map[string]any{
			"name": "Dhaka",
			"main": map[string]any{"temp": 31.2, "humidity": 74},
			"weather": []map[string]any{
				{"main": "Clouds", "description": "broken clouds", "icon": "04d"},
			},
		},
	}, http.StatusOK)

	resp, err := newGateway(server.URL).CurrentConditions(23.8103, 90.4125)
	require.NoError(t, err)

	assert.Equal(t, "Dhaka", resp.Name)
	assert.Equal(t, 31.2, resp.Main.Temp)
	assert.Equal(t, "Clouds", resp.Condition().Main)

	query := seen["/weather"]
	assert.Equal(t, "23.8103", query.Get("lat"))
	assert.Equal(t, "90.4125", query.Get("lon"))
	assert.Equal(t, "metric", query.Get("units"))
	assert.Equal(t, "bn", query.Get("lang"))
	assert.Equal(t, "test-key", query.Get("appid"))
}

func TestForecastRequestsFortySteps(t *testing.T) {
	server, seen := newProvider(t, map[string]any{
		"/forecast": map[string]any{"list": []map[string]any{}},
	}, http.StatusOK)

	_, err := newGateway(server.URL).Forecast(23.8103, 90.4125)
	require.NoError(t, err)
	assert.Equal(t, "40", seen["/forecast"].Get("cnt"))
}

func TestAirPollutionOmitsLangAndUnits(t *testing.T) {
	server, seen := newProvider(t, map[string]any{
		"/air_pollution": map[string]any{
			"list": []map[string]any{{"main": map[string]any{"aqi": 3}}},
		},
	}, http.StatusOK)

	resp, err := newGateway(server.URL).AirPollution(23.8103, 90.4125)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.AQIOrZero())

	query := seen["/air_pollution"]
	assert.Empty(t, query.Get("lang"))
	assert.Empty(t, query.Get("units"))
	assert.Equal(t, "test-key", query.Get("appid"))
}

func TestMissingAQIEntryDecodesToZero(t *testing.T) {
	server, _ := newProvider(t, map[string]any{
		"/air_pollution": map[string]any{"list": []map[string]any{}},
	}, http.StatusOK)

	resp, err := newGateway(server.URL).AirPollution(23.8103, 90.4125)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.AQIOrZero())
}

func TestUVForecastReadsDailyPeak(t *testing.T) {
	server, seen := newProvider(t, map[string]any{
		"/uvi/forecast": map[string]any{
			"daily": map[string]any{"uv_index_max": []float64{7.4}},
		},
	}, http.StatusOK)

	resp, err := newGateway(server.URL).UVForecast(23.8103, 90.4125)
	require.NoError(t, err)
	assert.Equal(t, 7.4, resp.PeakOrZero())
	assert.Equal(t, "1", seen["/uvi/forecast"].Get("cnt"))
}

func TestFindLocationsRanksByPopulationCappedAtFive(t *testing.T) {
	server, seen := newProvider(t, map[string]any{
		"/find": map[string]any{
			"list": []map[string]any{
				{"name": "Dhaka", "coord": map[string]any{"lat": 23.8103, "lon": 90.4125}, "sys": map[string]any{"country": "BD"}},
				{"name": "Dhankuta", "coord": map[string]any{"lat": 26.9833, "lon": 87.35}, "sys": map[string]any{"country": "NP"}},
			},
		},
	}, http.StatusOK)

	locations, err := newGateway(server.URL).FindLocations("dha")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Dhaka", locations[0].Name)
	assert.Equal(t, "23.8103,90.4125", locations[0].ID)

	query := seen["/find"]
	assert.Equal(t, "dha", query.Get("q"))
	assert.Equal(t, "like", query.Get("type"))
	assert.Equal(t, "population", query.Get("sort"))
	assert.Equal(t, "5", query.Get("cnt"))
}

func TestProviderErrorMessageIsSurfaced(t *testing.T) {
	server, _ := newProvider(t, map[string]any{
		"/weather": map[string]any{"cod": "401", "message": "Invalid API key"},
	}, http.StatusUnauthorized)

	_, err := newGateway(server.URL).CurrentConditions(23.8103, 90.4125)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}
