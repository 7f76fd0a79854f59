package db

import "abohawa-api/internal/domain/model"

// HealthDBGateway reports the health of the relational store.
type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}

// CacheHealthGateway reports the health of the redis store.
type CacheHealthGateway interface {
	Health() model.ComponentHealthStatus
}
