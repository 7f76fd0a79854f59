package forecast

import (
	"context"
	"errors"

	"abohawa-api/internal/domain/entity"
)

// Status is the lifecycle state of the orchestrator.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var (
	// ErrRefreshFailed wraps any endpoint failure of a refresh cycle. The
	// previous snapshot is never touched when this is returned.
	ErrRefreshFailed = errors.New("weather refresh failed")

	// ErrSuperseded marks a cycle whose target location was replaced by a
	// newer request before the cycle finished; its result was discarded.
	ErrSuperseded = errors.New("refresh superseded by a newer location")

	// ErrNoActiveLocation is returned by RefreshActive before any location
	// has ever been resolved.
	ErrNoActiveLocation = errors.New("no active location to refresh")
)

// ForecastUseCase orchestrates the five concurrent weather retrievals and
// owns the single current snapshot.
type ForecastUseCase interface {
	// Refresh runs a full fetch cycle for the location. All five endpoints
	// must succeed or the previous snapshot is kept and one localized failure
	// alert is published
	Refresh(ctx context.Context, location entity.Location) (*entity.WeatherSnapshot, error)

	// RefreshByGeolocation resolves the caller's coordinates and refreshes
	// them under the localized current-location placeholder name
	RefreshByGeolocation(ctx context.Context) (*entity.WeatherSnapshot, error)

	// RefreshActive re-runs the cycle for the current snapshot's location
	RefreshActive(ctx context.Context) (*entity.WeatherSnapshot, error)

	// Snapshot returns the last committed snapshot, or nil before the first
	// successful cycle
	Snapshot() *entity.WeatherSnapshot

	// Status reports the orchestrator lifecycle state
	Status() Status
}
