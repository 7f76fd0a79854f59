package api

import (
	"fmt"

	"abohawa-api/pkg/http"
)

// ipGeoResponse is the ip-api.com JSON payload. A "fail" status carries the
// denial reason in the message field.
type ipGeoResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// geoGatewayImpl resolves coordinates from the caller's public IP.
type geoGatewayImpl struct {
	httpClient *http.Client
}

// NewGeoGateway creates a GeoGateway backed by an IP geolocation service.
// An empty base URL yields a gateway that always reports the capability as
// unavailable.
func NewGeoGateway(baseURL string, clientOptions http.ClientOptions) GeoGateway {
	if baseURL == "" {
		return &geoGatewayImpl{}
	}
	return &geoGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

// Locate returns the current coordinates
func (g *geoGatewayImpl) Locate() (*Coordinates, error) {
	if g.httpClient == nil {
		return nil, ErrGeolocationUnavailable
	}

	successResp, _, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/json").
		WithQueryParams(map[string]string{"fields": "status,message,lat,lon"}).
		WithSuccessResp(&ipGeoResponse{}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeolocationUnavailable, err)
	}

	resp := successResp.(*ipGeoResponse)
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrGeolocationDenied, resp.Message)
	}

	return &Coordinates{Lat: resp.Lat, Lon: resp.Lon}, nil
}
