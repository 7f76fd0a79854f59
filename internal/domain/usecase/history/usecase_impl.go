package history

import (
	"errors"
	"fmt"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/db"
)

const defaultSeriesDays = 30

type historyUseCase struct {
	dbGateway db.HistoryGateway
}

func NewHistoryUseCase(dbGateway db.HistoryGateway) UseCase {
	return &historyUseCase{dbGateway: dbGateway}
}

func (useCase *historyUseCase) Series(locationID string, days int) ([]entity.TemperatureRecord, error) {
	if locationID == "" {
		return nil, errors.New("locationId is required")
	}
	if days <= 0 {
		days = defaultSeriesDays
	}

	records, err := useCase.dbGateway.FindByLocation(locationID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to load temperature history: %w", err)
	}
	return records, nil
}

func (useCase *historyUseCase) Clear(locationID string) error {
	if locationID == "" {
		return errors.New("locationId is required")
	}

	if err := useCase.dbGateway.DeleteByLocation(locationID); err != nil {
		return fmt.Errorf("failed to clear temperature history: %w", err)
	}
	return nil
}
