package history

import "abohawa-api/internal/domain/entity"

// UseCase serves the persisted daily temperature series.
type UseCase interface {
	// Series returns up to days records for a location, oldest first
	Series(locationID string, days int) ([]entity.TemperatureRecord, error)

	// Clear removes every record for a location
	Clear(locationID string) error
}
