package health

import "abohawa-api/internal/domain/model"

type UseCase interface {
	// CheckHealth aggregates the health of every storage component
	CheckHealth() model.HealthResponse
}
