package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"abohawa-api/internal/domain/model"
	"abohawa-api/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth())
}

func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth()

		status := http.StatusOK
		if healthResponse.Status == model.StatusDown {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, healthResponse)
	}
}
