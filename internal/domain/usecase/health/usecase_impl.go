package health

import (
	"sync"

	"abohawa-api/internal/domain/gateway/db"
	"abohawa-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway db.CacheHealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway db.CacheHealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	var wg sync.WaitGroup
	var dbHealth, cacheHealth model.ComponentHealthStatus

	wg.Add(1)
	go func() {
		defer wg.Done()
		dbHealth = useCase.dbGateway.Health()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		cacheHealth = useCase.cacheGateway.Health()
	}()

	wg.Wait()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || cacheHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}
