package api

import "errors"

// Geolocation errors are surfaced to the user but never affect the last
// successfully resolved location.
var (
	ErrGeolocationUnavailable = errors.New("geolocation capability unavailable")
	ErrGeolocationDenied      = errors.New("geolocation request denied")
)

// Coordinates is a bare lat/lon pair resolved by the geolocation capability.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoGateway resolves the caller's approximate coordinates.
type GeoGateway interface {
	// Locate returns the current coordinates, or ErrGeolocationUnavailable /
	// ErrGeolocationDenied when the capability cannot serve the request
	Locate() (*Coordinates, error)
}
