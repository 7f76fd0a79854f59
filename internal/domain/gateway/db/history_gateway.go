package db

import "abohawa-api/internal/domain/entity"

// HistoryGateway persists daily temperature records for the historical
// series. Writes are best effort; a failed append never fails a refresh.
type HistoryGateway interface {
	// UpsertRecords writes the records, replacing existing (location, day) rows
	UpsertRecords(records []entity.TemperatureRecord) error

	// FindByLocation returns up to days records for a location, oldest first
	FindByLocation(locationID string, days int) ([]entity.TemperatureRecord, error)

	// DeleteByLocation removes all records for a location
	DeleteByLocation(locationID string) error
}
