package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"abohawa-api/internal/domain/entity"
)

// gormHistoryGateway implements HistoryGateway on a relational database.
type gormHistoryGateway struct {
	db *gorm.DB
}

// NewGormHistoryGateway creates a HistoryGateway backed by gorm.
func NewGormHistoryGateway(db *gorm.DB) HistoryGateway {
	return &gormHistoryGateway{db: db}
}

// UpsertRecords writes the records, replacing existing (location, day) rows
func (g *gormHistoryGateway) UpsertRecords(records []entity.TemperatureRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"temp_min", "temp_max", "recorded_at"}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to upsert temperature records: %w", err)
	}
	return nil
}

// FindByLocation returns up to days records for a location, oldest first
func (g *gormHistoryGateway) FindByLocation(locationID string, days int) ([]entity.TemperatureRecord, error) {
	var records []entity.TemperatureRecord
	err := g.db.
		Where("location_id = ?", locationID).
		Order("day desc").
		Limit(days).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find temperature records: %w", err)
	}

	// Reverse into chronological order for charting.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// DeleteByLocation removes all records for a location
func (g *gormHistoryGateway) DeleteByLocation(locationID string) error {
	err := g.db.Where("location_id = ?", locationID).Delete(&entity.TemperatureRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete temperature records: %w", err)
	}
	return nil
}
