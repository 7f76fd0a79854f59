package entity

import "strconv"

// Location is a resolved place on the map. The ID is the canonical
// "<lat>,<lon>" string and is the sole identity key: two locations are the
// same entity iff their IDs match, regardless of name or casing.
// Locations are never mutated after construction; replace instead.
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	ID      string  `json:"id"`
}

// NewLocation constructs a Location with its canonical ID.
func NewLocation(name string, lat, lon float64, country, state string) Location {
	return Location{
		Name:    name,
		Lat:     lat,
		Lon:     lon,
		Country: country,
		State:   state,
		ID:      LocationID(lat, lon),
	}
}

// LocationID derives the canonical identity key for a coordinate pair.
func LocationID(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
