package entity

import "time"

// TemperatureRecord is one day of observed min/max temperature for a
// location, appended after each successful refresh cycle and served to the
// historical chart.
type TemperatureRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	LocationID string    `json:"locationId" gorm:"index:idx_location_day,unique"`
	Day        string    `json:"day" gorm:"index:idx_location_day,unique"`
	TempMin    float64   `json:"tempMin"`
	TempMax    float64   `json:"tempMax"`
	RecordedAt time.Time `json:"recordedAt"`
}
