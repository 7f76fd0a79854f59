package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/model/external"
)

const testDebounce = 300 * time.Millisecond

// fakeWeatherGateway only serves FindLocations; the rest of the interface is
// unreachable from the search use case.
type fakeWeatherGateway struct {
	mu      sync.Mutex
	queries []string
	results []entity.Location
	err     error
}

func (f *fakeWeatherGateway) FindLocations(query string) ([]entity.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeWeatherGateway) recordedQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func (f *fakeWeatherGateway) CurrentConditions(lat, lon float64) (*external.CurrentWeatherResponse, error) {
	panic("not used by search")
}

func (f *fakeWeatherGateway) Forecast(lat, lon float64) (*external.ForecastResponse, error) {
	panic("not used by search")
}

func (f *fakeWeatherGateway) HourlyForecast(lat, lon float64) (*external.ForecastResponse, error) {
	panic("not used by search")
}

func (f *fakeWeatherGateway) AirPollution(lat, lon float64) (*external.AirPollutionResponse, error) {
	panic("not used by search")
}

func (f *fakeWeatherGateway) UVForecast(lat, lon float64) (*external.UVForecastResponse, error) {
	panic("not used by search")
}

func suggestAsync(t *testing.T, uc SearchUseCase, query string) <-chan []entity.Location {
	t.Helper()
	out := make(chan []entity.Location, 1)
	go func() {
		locations, err := uc.Suggest(context.Background(), query)
		assert.NoError(t, err)
		out <- locations
	}()
	return out
}

func TestShortQueryResolvesEmptyWithoutLookup(t *testing.T) {
	gw := &fakeWeatherGateway{}
	clock := clockwork.NewFakeClock()
	uc := NewSearchUseCase(gw, clock, testDebounce, 3)

	locations, err := uc.Suggest(context.Background(), "dh")
	require.NoError(t, err)
	assert.Empty(t, locations)
	assert.Empty(t, gw.recordedQueries())
}

func TestLookupFiresAfterQuietWindow(t *testing.T) {
	gw := &fakeWeatherGateway{results: []entity.Location{
		entity.NewLocation("Dhaka", 23.8103, 90.4125, "BD", ""),
	}}
	clock := clockwork.NewFakeClock()
	uc := NewSearchUseCase(gw, clock, testDebounce, 3)

	out := suggestAsync(t, uc, "dhaka")
	clock.BlockUntil(1)

	clock.Advance(testDebounce)
	locations := <-out
	require.Len(t, locations, 1)
	assert.Equal(t, "Dhaka", locations[0].Name)
	assert.Equal(t, []string{"dhaka"}, gw.recordedQueries())
}

func TestNewKeystrokeSupersedesPendingLookup(t *testing.T) {
	gw := &fakeWeatherGateway{results: []entity.Location{
		entity.NewLocation("Sylhet", 24.8949, 91.8687, "BD", ""),
	}}
	clock := clockwork.NewFakeClock()
	uc := NewSearchUseCase(gw, clock, testDebounce, 3)

	first := suggestAsync(t, uc, "syl")
	clock.BlockUntil(1)

	// A second keystroke lands inside the quiet window. The first call must
	// resolve empty and its query must never reach the provider.
	second := suggestAsync(t, uc, "sylhet")
	assert.Empty(t, <-first)

	clock.BlockUntil(1)
	clock.Advance(testDebounce)
	locations := <-second
	require.Len(t, locations, 1)
	assert.Equal(t, []string{"sylhet"}, gw.recordedQueries())
}

func TestShortQueryCancelsPendingLookup(t *testing.T) {
	gw := &fakeWeatherGateway{}
	clock := clockwork.NewFakeClock()
	uc := NewSearchUseCase(gw, clock, testDebounce, 3)

	first := suggestAsync(t, uc, "dhaka")
	clock.BlockUntil(1)

	// Backspacing below the minimum clears the queued lookup entirely.
	locations, err := uc.Suggest(context.Background(), "dh")
	require.NoError(t, err)
	assert.Empty(t, locations)
	assert.Empty(t, <-first)

	clock.Advance(testDebounce)
	assert.Empty(t, gw.recordedQueries())
}

func TestProviderFailureResolvesSilentlyEmpty(t *testing.T) {
	gw := &fakeWeatherGateway{err: errors.New("provider unreachable")}
	clock := clockwork.NewFakeClock()
	uc := NewSearchUseCase(gw, clock, testDebounce, 3)

	out := suggestAsync(t, uc, "dhaka")
	clock.BlockUntil(1)
	clock.Advance(testDebounce)

	assert.Empty(t, <-out)
}

func TestSuggestionsCappedAtFive(t *testing.T) {
	many := make([]entity.Location, 0, 7)
	for i := 0; i < 7; i++ {
		many = append(many, entity.NewLocation("Place", float64(i), float64(i), "BD", ""))
	}
	gw := &fakeWeatherGateway{results: many}
	clock := clockwork.NewFakeClock()
	uc := NewSearchUseCase(gw, clock, testDebounce, 3)

	out := suggestAsync(t, uc, "place")
	clock.BlockUntil(1)
	clock.Advance(testDebounce)

	assert.Len(t, <-out, 5)
}

func TestContextCancellationAbortsWait(t *testing.T) {
	gw := &fakeWeatherGateway{}
	clock := clockwork.NewFakeClock()
	uc := NewSearchUseCase(gw, clock, testDebounce, 3)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan error, 1)
	go func() {
		_, err := uc.Suggest(ctx, "dhaka")
		out <- err
	}()
	clock.BlockUntil(1)
	cancel()

	assert.ErrorIs(t, <-out, context.Canceled)
}
