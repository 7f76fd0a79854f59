package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"abohawa-api/internal/domain/usecase/history"
	"abohawa-api/pkg/util/numberutils"
)

type HistoryController struct {
	api     *echo.Group
	useCase history.UseCase
}

func NewHistoryController(api *echo.Group, useCase history.UseCase) *HistoryController {
	return &HistoryController{api: api, useCase: useCase}
}

// InitHistoryRoutes initializes temperature history routes
func (controller *HistoryController) InitHistoryRoutes() {
	controller.api.GET("/history", controller.GetSeries)
	controller.api.DELETE("/history", controller.ClearSeries)
}

func (controller *HistoryController) GetSeries(c echo.Context) error {
	locationID := c.QueryParam("locationId")
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), 0)

	records, err := controller.useCase.Series(locationID, days)
	if err != nil {
		if locationID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, records)
}

func (controller *HistoryController) ClearSeries(c echo.Context) error {
	locationID := c.QueryParam("locationId")
	if locationID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "locationId is required"})
	}

	if err := controller.useCase.Clear(locationID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
