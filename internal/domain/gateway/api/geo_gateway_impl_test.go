package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "abohawa-api/pkg/http"
)

func TestLocateResolvesCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		assert.Equal(t, "status,message,lat,lon", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","lat":23.7644,"lon":90.389}`))
	}))
	defer server.Close()

	coords, err := NewGeoGateway(server.URL, pkghttp.ClientOptions{}).Locate()
	require.NoError(t, err)
	assert.Equal(t, 23.7644, coords.Lat)
	assert.Equal(t, 90.389, coords.Lon)
}

func TestLocateFailStatusMapsToDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer server.Close()

	_, err := NewGeoGateway(server.URL, pkghttp.ClientOptions{}).Locate()
	assert.ErrorIs(t, err, ErrGeolocationDenied)
}

func TestEmptyBaseURLIsAlwaysUnavailable(t *testing.T) {
	_, err := NewGeoGateway("", pkghttp.ClientOptions{}).Locate()
	assert.ErrorIs(t, err, ErrGeolocationUnavailable)
}
